package weather

import "fmt"

// Unit is the temperature unit used for display.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// ParseUnit validates a persisted or user-supplied unit string.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case Celsius, Fahrenheit:
		return Unit(s), nil
	}
	return "", fmt.Errorf("unknown temperature unit %q", s)
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Celsius {
		return Fahrenheit
	}
	return Celsius
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// Converted returns a copy of the snapshot with all temperature fields
// expressed in the requested unit. Upstream data is always Celsius, so
// requesting Celsius returns the snapshot unchanged.
func (s *Snapshot) Converted(unit Unit) *Snapshot {
	if unit != Fahrenheit {
		return s
	}

	out := *s
	out.Current.Temperature2m = CelsiusToFahrenheit(s.Current.Temperature2m)
	out.Current.ApparentTemperature = CelsiusToFahrenheit(s.Current.ApparentTemperature)

	out.Hourly.Temperature2m = make([]float64, len(s.Hourly.Temperature2m))
	for i, t := range s.Hourly.Temperature2m {
		out.Hourly.Temperature2m[i] = CelsiusToFahrenheit(t)
	}

	out.Daily.Temperature2mMax = make([]float64, len(s.Daily.Temperature2mMax))
	for i, t := range s.Daily.Temperature2mMax {
		out.Daily.Temperature2mMax[i] = CelsiusToFahrenheit(t)
	}
	out.Daily.Temperature2mMin = make([]float64, len(s.Daily.Temperature2mMin))
	for i, t := range s.Daily.Temperature2mMin {
		out.Daily.Temperature2mMin[i] = CelsiusToFahrenheit(t)
	}
	return &out
}
