package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type ViewHandler struct {
	viewService ports.ViewService
}

func NewViewHandler(viewService ports.ViewService) *ViewHandler {
	return &ViewHandler{viewService: viewService}
}

// ListRecent returns the caller's recently viewed profiles, newest first.
//
// @Summary      Recently viewed profiles
// @Tags         views
// @Produce      json
// @Success      200  {array}  domain.ProfileView
// @Security     BearerAuth
// @Router       /me/views [get]
func (h *ViewHandler) ListRecent(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	views, err := h.viewService.ListRecent(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
