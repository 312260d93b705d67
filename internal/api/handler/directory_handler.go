package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type DirectoryHandler struct {
	directoryService ports.DirectoryService
}

func NewDirectoryHandler(directoryService ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// SearchProfessionals lists professionals matching the query filters.
//
// @Summary      Search professionals
// @Tags         directory
// @Produce      json
// @Param        lat         query  number  false  "Requester latitude"
// @Param        lng         query  number  false  "Requester longitude"
// @Param        range       query  number  false  "Max distance in km"
// @Param        rating      query  number  false  "Minimum average rating"
// @Param        gender      query  string  false  "Gender filter"
// @Param        plan        query  string  false  "Plan tier filter"
// @Param        categoryId  query  string  false  "Category filter"
// @Param        active      query  bool    false  "Active filter"
// @Success      200  {array}   ports.ProfessionalEntry
// @Failure      400  {object}  errorResponse
// @Router       /directory/professionals [get]
func (h *DirectoryHandler) SearchProfessionals(c echo.Context) error {
	input, err := searchInput(c)
	if err != nil {
		return err
	}

	entries, err := h.directoryService.SearchProfessionals(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// GetProfessional returns one professional's full profile. When the caller is
// authenticated and not the profile owner, a profile view is recorded.
//
// @Summary      Professional profile
// @Tags         directory
// @Produce      json
// @Param        id  path  string  true  "Professional id"
// @Success      200  {object}  ports.ProfessionalDetail
// @Failure      404  {object}  errorResponse
// @Router       /directory/professionals/{id} [get]
func (h *DirectoryHandler) GetProfessional(c echo.Context) error {
	// Viewer identity is optional here; anonymous lookups skip view recording.
	viewerID, _ := c.Get("user_id").(string)

	detail, err := h.directoryService.GetProfessional(c.Request().Context(), c.Param("id"), viewerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// SearchEstablishments lists establishments matching the query filters.
//
// @Summary      Search establishments
// @Tags         directory
// @Produce      json
// @Param        lat         query  number  false  "Requester latitude"
// @Param        lng         query  number  false  "Requester longitude"
// @Param        range       query  number  false  "Max distance in km"
// @Param        rating      query  number  false  "Minimum average rating"
// @Param        categoryId  query  string  false  "Category filter"
// @Success      200  {array}   ports.EstablishmentEntry
// @Failure      400  {object}  errorResponse
// @Router       /directory/establishments [get]
func (h *DirectoryHandler) SearchEstablishments(c echo.Context) error {
	input, err := searchInput(c)
	if err != nil {
		return err
	}

	entries, err := h.directoryService.SearchEstablishments(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// GetEstablishment returns one establishment.
//
// @Summary      Establishment detail
// @Tags         directory
// @Produce      json
// @Param        id  path  string  true  "Establishment id"
// @Success      200  {object}  ports.EstablishmentEntry
// @Failure      404  {object}  errorResponse
// @Router       /directory/establishments/{id} [get]
func (h *DirectoryHandler) GetEstablishment(c echo.Context) error {
	entry, err := h.directoryService.GetEstablishment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// ListCategories lists catalog categories, optionally filtered by type.
//
// @Summary      List categories
// @Tags         directory
// @Produce      json
// @Param        type  query  string  false  "professional or establishment"
// @Success      200  {array}  domain.Category
// @Router       /directory/categories [get]
func (h *DirectoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.directoryService.ListCategories(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// ListPlans lists the subscription plans.
//
// @Summary      List plans
// @Tags         directory
// @Produce      json
// @Success      200  {array}  domain.Plan
// @Router       /directory/plans [get]
func (h *DirectoryHandler) ListPlans(c echo.Context) error {
	plans, err := h.directoryService.ListPlans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// searchInput parses the shared directory search query parameters.
func searchInput(c echo.Context) (ports.SearchInput, error) {
	input := ports.SearchInput{
		Gender:     c.QueryParam("gender"),
		PlanTier:   c.QueryParam("plan"),
		CategoryID: c.QueryParam("categoryId"),
	}

	var err error
	if input.Lat, err = floatParam(c, "lat"); err != nil {
		return input, err
	}
	if input.Lng, err = floatParam(c, "lng"); err != nil {
		return input, err
	}
	if input.RangeKm, err = floatParam(c, "range"); err != nil {
		return input, err
	}
	if input.MinRating, err = floatParam(c, "rating"); err != nil {
		return input, err
	}

	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "active must be a boolean")
		}
		input.Active = &active
	}

	// Range without a requester position is allowed: no distance can be
	// computed, so the radius filter applies to nothing and the full list
	// comes back.
	return input, nil
}

func floatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
	}
	return &v, nil
}
