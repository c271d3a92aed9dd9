package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/JavaFXpert/fish-bite-predictor/internal/advisor"
	"github.com/JavaFXpert/fish-bite-predictor/internal/geocode"
	"github.com/JavaFXpert/fish-bite-predictor/internal/session"
	"github.com/JavaFXpert/fish-bite-predictor/internal/species"
	"github.com/JavaFXpert/fish-bite-predictor/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *advisor.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/species", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"species": species.All()})
	})

	v1.Post("/sessions", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(service.CreateSession())
	})

	v1.Post("/sessions/:id/location/coordinates", func(c *fiber.Ctx) error {
		var req coordinatesRequest
		if err := bind(c, &req); err != nil {
			return err
		}

		view, err := service.ResolveCoordinates(c.Context(), c.Params("id"), req.toCoordinates())
		if err != nil {
			return mapError(err)
		}
		return c.JSON(view)
	})

	v1.Post("/sessions/:id/location/search", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := bind(c, &req); err != nil {
			return err
		}

		view, err := service.ResolveCity(c.Context(), c.Params("id"), req.Query)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(view)
	})

	v1.Put("/sessions/:id/species", func(c *fiber.Ctx) error {
		var req speciesRequest
		if err := bind(c, &req); err != nil {
			return err
		}

		view, err := service.SelectSpecies(c.Context(), c.Params("id"), req.Species)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(view)
	})

	v1.Get("/sessions/:id/prediction", func(c *fiber.Ctx) error {
		view, err := service.Prediction(c.Context(), c.Params("id"))
		if err != nil {
			return mapError(err)
		}
		return c.JSON(view)
	})
}

// coordinatesRequest carries client-obtained device coordinates. Pointers
// distinguish "absent" from a legitimate zero value.
type coordinatesRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

func (r coordinatesRequest) toCoordinates() weather.Coordinates {
	return weather.Coordinates{Lat: *r.Lat, Lon: *r.Lon}
}

type searchRequest struct {
	Query string `json:"query" validate:"required"`
}

type speciesRequest struct {
	Species string `json:"species" validate:"required"`
}

// bind parses and validates a JSON request body.
func bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// mapError translates service errors into HTTP statuses. Every failure
// leaves the session usable; nothing here is fatal.
func mapError(err error) error {
	switch {
	case errors.Is(err, advisor.ErrEmptyQuery):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, advisor.ErrUnknownSpecies):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, geocode.ErrNoResults):
		return fiber.NewError(fiber.StatusNotFound, "city not found; try a different name")
	case errors.Is(err, advisor.ErrWeatherFetch):
		return fiber.NewError(fiber.StatusBadGateway, "weather data is unavailable; please retry")
	default:
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
}
