package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skycast/internal/dashboard"
	"skycast/internal/geo"
	"skycast/internal/prefs"
	"skycast/internal/search"
)

var validate = validator.New()

// Deps bundles the handlers' collaborators.
type Deps struct {
	Controller *dashboard.Controller
	Search     *geo.SearchClient
	Session    *search.Session
	Prefs      *prefs.Store
}

// dashboardResponse is the dashboard view plus the active display unit,
// with the snapshot's temperatures already converted to it.
type dashboardResponse struct {
	dashboard.View
	Unit string `json:"unit"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		view := deps.Controller.View()
		unit := deps.Prefs.Unit()
		if view.Snapshot != nil {
			view.Snapshot = view.Snapshot.Converted(unit)
		}
		return c.JSON(dashboardResponse{View: view, Unit: string(unit)})
	})

	v1.Get("/search", func(c *fiber.Ctx) error {
		query := c.Query("q")
		candidates, err := deps.Search.Search(c.Context(), query)
		if err != nil {
			// Degraded no-results state rather than a hard failure.
			return c.JSON(search.Results{Query: query, Candidates: []geo.Candidate{}, Failed: true})
		}
		return c.JSON(search.Results{Query: query, Candidates: candidates})
	})

	v1.Post("/search/input", func(c *fiber.Ctx) error {
		var req searchInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		deps.Session.SetQuery(req.Query)
		return c.SendStatus(fiber.StatusAccepted)
	})

	v1.Get("/search/results", func(c *fiber.Ctx) error {
		return c.JSON(deps.Session.Results())
	})

	v1.Post("/locations/select", func(c *fiber.Ctx) error {
		var req selectLocation
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		deps.Controller.SelectLocation(c.Context(), geo.Coordinate{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}, req.Name)
		return c.JSON(deps.Controller.View())
	})

	v1.Get("/units", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"unit": deps.Prefs.Unit()})
	})

	v1.Post("/units/toggle", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"unit": deps.Prefs.Toggle()})
	})
}

type searchInput struct {
	Query string `json:"query"`
}

type selectLocation struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}
