package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Stats returns entity counts for the back-office dashboard.
//
// @Summary      Dashboard stats
// @Tags         admin
// @Produce      json
// @Success      200  {object}  ports.AdminStats
// @Security     BearerAuth
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// CreateCategory adds a catalog category.
//
// @Summary      Create category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  createCategoryRequest  true  "Category"
// @Success      201  {object}  domain.Category
// @Failure      400  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/categories [post]
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.adminService.CreateCategory(c.Request().Context(), req.Name, domain.CategoryType(req.Type))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// RenameCategory renames a catalog category.
//
// @Summary      Rename category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Category id"
// @Param        body  body  renameCategoryRequest  true  "New name"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/categories/{id} [patch]
func (h *AdminHandler) RenameCategory(c echo.Context) error {
	var req renameCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.adminService.RenameCategory(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// CreateEstablishment registers a venue in the directory.
//
// @Summary      Create establishment
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  establishmentRequest  true  "Establishment"
// @Success      201  {object}  domain.Establishment
// @Failure      400  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/establishments [post]
func (h *AdminHandler) CreateEstablishment(c echo.Context) error {
	input, err := establishmentInput(c)
	if err != nil {
		return err
	}

	establishment, err := h.adminService.CreateEstablishment(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, establishment)
}

// UpdateEstablishment replaces the mutable fields of an establishment.
//
// @Summary      Update establishment
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Establishment id"
// @Param        body  body  establishmentRequest  true  "Establishment"
// @Success      200  {object}  domain.Establishment
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/establishments/{id} [put]
func (h *AdminHandler) UpdateEstablishment(c echo.Context) error {
	input, err := establishmentInput(c)
	if err != nil {
		return err
	}

	establishment, err := h.adminService.UpdateEstablishment(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, establishment)
}

// CreatePlan adds a subscription plan.
//
// @Summary      Create plan
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  planRequest  true  "Plan"
// @Success      201  {object}  domain.Plan
// @Failure      400  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/plans [post]
func (h *AdminHandler) CreatePlan(c echo.Context) error {
	input, err := planInput(c)
	if err != nil {
		return err
	}

	plan, err := h.adminService.CreatePlan(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// UpdatePlan replaces the mutable fields of a plan.
//
// @Summary      Update plan
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "Plan id"
// @Param        body  body  planRequest  true  "Plan"
// @Success      200  {object}  domain.Plan
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/plans/{id} [put]
func (h *AdminHandler) UpdatePlan(c echo.Context) error {
	input, err := planInput(c)
	if err != nil {
		return err
	}

	plan, err := h.adminService.UpdatePlan(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

func establishmentInput(c echo.Context) (ports.EstablishmentInput, error) {
	var req establishmentRequest
	if err := c.Bind(&req); err != nil {
		return ports.EstablishmentInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.EstablishmentInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.EstablishmentInput{
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}, nil
}

func planInput(c echo.Context) (ports.PlanInput, error) {
	var req planRequest
	if err := c.Bind(&req); err != nil {
		return ports.PlanInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.PlanInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.PlanInput{
		Tier:   req.Tier,
		Name:   req.Name,
		Price:  req.Price,
		Active: *req.Active,
	}, nil
}

// SetUserActive activates or deactivates a user account.
//
// @Summary      Set user active flag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "User id"
// @Param        body  body  setActiveRequest  true  "Active flag"
// @Success      200  {object}  okResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id}/active [patch]
func (h *AdminHandler) SetUserActive(c echo.Context) error {
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.adminService.SetUserActive(c.Request().Context(), c.Param("id"), *req.Active); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
