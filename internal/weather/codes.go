package weather

// CodeInfo describes a WMO weather code for presentation.
type CodeInfo struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// codeTable maps WMO weather codes to labels and icon identifiers.
var codeTable = map[int]CodeInfo{
	0:  {Label: "Clear sky", Icon: "Sun"},
	1:  {Label: "Mainly clear", Icon: "SunDim"},
	2:  {Label: "Partly cloudy", Icon: "CloudSun"},
	3:  {Label: "Overcast", Icon: "Cloud"},
	45: {Label: "Fog", Icon: "CloudFog"},
	48: {Label: "Depositing rime fog", Icon: "CloudFog"},
	51: {Label: "Light drizzle", Icon: "CloudDrizzle"},
	53: {Label: "Moderate drizzle", Icon: "CloudDrizzle"},
	55: {Label: "Dense drizzle", Icon: "CloudDrizzle"},
	56: {Label: "Light freezing drizzle", Icon: "CloudHail"},
	57: {Label: "Dense freezing drizzle", Icon: "CloudHail"},
	61: {Label: "Slight rain", Icon: "CloudRain"},
	63: {Label: "Moderate rain", Icon: "CloudRain"},
	65: {Label: "Heavy rain", Icon: "CloudRain"},
	66: {Label: "Light freezing rain", Icon: "CloudHail"},
	67: {Label: "Heavy freezing rain", Icon: "CloudHail"},
	71: {Label: "Slight snow fall", Icon: "CloudSnow"},
	73: {Label: "Moderate snow fall", Icon: "CloudSnow"},
	75: {Label: "Heavy snow fall", Icon: "CloudSnow"},
	77: {Label: "Snow grains", Icon: "CloudSnow"},
	80: {Label: "Slight rain showers", Icon: "CloudRain"},
	81: {Label: "Moderate rain showers", Icon: "CloudRain"},
	82: {Label: "Violent rain showers", Icon: "CloudRain"},
	85: {Label: "Slight snow showers", Icon: "CloudSnow"},
	86: {Label: "Heavy snow showers", Icon: "CloudSnow"},
	95: {Label: "Thunderstorm", Icon: "CloudLightning"},
	96: {Label: "Thunderstorm with slight hail", Icon: "CloudLightning"},
	99: {Label: "Thunderstorm with heavy hail", Icon: "CloudLightning"},
}

// DescribeCode looks up a WMO weather code. Unrecognized codes fall back to
// a generic cloud entry.
func DescribeCode(code int) CodeInfo {
	if info, ok := codeTable[code]; ok {
		return info
	}
	return CodeInfo{Label: "Unknown", Icon: "Cloud"}
}
