package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type FavoriteHandler struct {
	favoriteService ports.FavoriteService
}

func NewFavoriteHandler(favoriteService ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Add bookmarks a professional for the authenticated user.
//
// @Summary      Add favorite
// @Tags         favorites
// @Produce      json
// @Param        id  path  string  true  "Professional id"
// @Success      201  {object}  domain.Favorite
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /favorites/{id} [put]
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	fav, err := h.favoriteService.Add(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, fav)
}

// Remove deletes a bookmark. Removing a professional that was never
// bookmarked succeeds.
//
// @Summary      Remove favorite
// @Tags         favorites
// @Produce      json
// @Param        id  path  string  true  "Professional id"
// @Success      200  {object}  okResponse
// @Security     BearerAuth
// @Router       /favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.favoriteService.Remove(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// List returns the caller's bookmarks enriched with professional summaries.
//
// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Success      200  {array}  ports.FavoriteEntry
// @Security     BearerAuth
// @Router       /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	entries, err := h.favoriteService.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
