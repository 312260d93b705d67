package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type RatingHandler struct {
	ratingService ports.RatingService
}

func NewRatingHandler(ratingService ports.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RateProfessional records or replaces the caller's rating of a professional.
//
// @Summary      Rate a professional
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "Professional id"
// @Param        body  body  rateRequest  true  "Rating"
// @Success      200  {object}  domain.Rating
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /ratings/professionals/{id} [post]
func (h *RatingHandler) RateProfessional(c echo.Context) error {
	input, err := h.rateInput(c)
	if err != nil {
		return err
	}

	rating, err := h.ratingService.RateProfessional(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rating)
}

// RateEstablishment records or replaces the caller's rating of an establishment.
//
// @Summary      Rate an establishment
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "Establishment id"
// @Param        body  body  rateRequest  true  "Rating"
// @Success      200  {object}  domain.Rating
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /ratings/establishments/{id} [post]
func (h *RatingHandler) RateEstablishment(c echo.Context) error {
	input, err := h.rateInput(c)
	if err != nil {
		return err
	}

	rating, err := h.ratingService.RateEstablishment(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) rateInput(c echo.Context) (ports.RateInput, error) {
	userID, _, err := ctxUser(c)
	if err != nil {
		return ports.RateInput{}, err
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return ports.RateInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.RateInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return ports.RateInput{
		TargetID: c.Param("id"),
		RaterID:  userID,
		Score:    req.Rating,
		Comment:  req.Comment,
	}, nil
}
