package countries

import (
	"net/url"

	"country-exchange/core/apperr"
	"country-exchange/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for countries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the countries routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/countries")
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/", h.HandleList)
	group.Get("/image", h.HandleImage)
	group.Get("/:name", h.HandleGetByName)
	group.Delete("/:name", h.HandleDelete)

	app.Get("/status", h.HandleStatus)
}

// HandleRefresh runs a full reconciliation pass against both external feeds.
// @Summary Refresh Countries
// @Description Fetches the country catalogue and exchange rates, reconciles them into storage, and reports insert/update counts.
// @Tags countries
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Refresh Counts"
// @Failure 503 {object} map[string]string "External Data Source Unavailable"
// @Router /countries/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting country refresh")

	result, err := h.service.Refresh(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "Countries refreshed successfully",
		"inserted": result.Inserted,
		"updated":  result.Updated,
		"total":    result.Inserted + result.Updated,
	})
}

// HandleList returns the reconciled set, filtered and sorted.
// @Summary List Countries
// @Description List reconciled country records with optional region/currency filters and sorting.
// @Tags countries
// @Produce json
// @Param region query string false "Exact-match region filter"
// @Param currency query string false "Exact-match currency code filter"
// @Param sort query string false "Sort key" Enums(name_asc, name_desc, gdp_asc, gdp_desc, population_asc, population_desc)
// @Success 200 {array} models.Country "Countries"
// @Failure 400 {object} map[string]interface{} "Validation Failed"
// @Router /countries [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	filters := Filters{
		Region:   c.Query("region"),
		Currency: c.Query("currency"),
		Sort:     c.Query("sort"),
	}

	// Validate the enumerated sort values before reaching the core.
	if filters.Sort != "" && !ValidSort(filters.Sort) {
		return apperr.ValidationFailed(map[string]string{
			"sort": "must be one of name_asc, name_desc, gdp_asc, gdp_desc, population_asc, population_desc",
		})
	}

	result, err := h.service.List(c.Context(), filters)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleImage streams the generated summary image.
// @Summary Get Summary Image
// @Description Serve the PNG summary card generated after the last refresh.
// @Tags countries
// @Produce png
// @Success 200 {file} binary "Summary Image"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /countries/image [get]
func (h *Handler) HandleImage(c *fiber.Ctx) error {
	rc, err := h.service.OpenSummary(c.Context())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.SendStream(rc)
}

// HandleGetByName returns a single country by exact name.
// @Summary Get Country
// @Description Get a single country record by exact name match.
// @Tags countries
// @Produce json
// @Param name path string true "Country Name"
// @Success 200 {object} models.Country "Country"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /countries/{name} [get]
func (h *Handler) HandleGetByName(c *fiber.Ctx) error {
	name, err := nameParam(c)
	if err != nil {
		return err
	}

	country, err := h.service.GetByName(c.Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(country)
}

// HandleDelete removes a single country by exact name.
// @Summary Delete Country
// @Description Delete a country record and recompute the aggregate count.
// @Tags countries
// @Param name path string true "Country Name"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /countries/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, err := nameParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), name); err != nil {
		return err
	}

	l.Info("Country deleted", zap.String("name", name))
	return c.SendStatus(fiber.StatusNoContent)
}

// nameParam decodes the :name route parameter. Fiber hands the segment over
// still percent-encoded, and country names routinely contain spaces.
func nameParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", apperr.ValidationFailed(map[string]string{"name": "malformed percent-encoding"})
	}
	return name, nil
}

// HandleStatus returns the aggregate dataset status.
// @Summary Get Status
// @Description Show total countries and the last refresh timestamp.
// @Tags countries
// @Produce json
// @Success 200 {object} models.SystemStatus "Status"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	status, err := h.service.GetStatus(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(status)
}
