package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type RequestHandler struct {
	requestService ports.RequestService
}

func NewRequestHandler(requestService ports.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// Create opens a service request from the caller to a professional.
//
// @Summary      Create service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  createRequestRequest  true  "Target professional"
// @Success      201  {object}  domain.ServiceRequest
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.requestService.Create(c.Request().Context(), userID, req.ProfessionalID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, request)
}

// List returns the caller's requests, as client by default or as professional
// when as=professional.
//
// @Summary      List service requests
// @Tags         requests
// @Produce      json
// @Param        as      query  string  false  "client or professional"
// @Param        status  query  string  false  "Status filter"
// @Success      200  {array}   domain.ServiceRequest
// @Failure      400  {object}  errorResponse
// @Security     BearerAuth
// @Router       /requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if s := c.QueryParam("status"); s != "" && !domain.ValidRequestStatus(domain.RequestStatus(s)) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}

	requests, err := h.requestService.List(c.Request().Context(), ports.ListRequestsInput{
		UserID: userID,
		As:     c.QueryParam("as"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// UpdateStatus advances a request through its workflow.
//
// @Summary      Update request status
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Request id"
// @Param        body  body  updateRequestRequest  true  "New status"
// @Success      200  {object}  domain.ServiceRequest
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Security     BearerAuth
// @Router       /requests/{id}/status [patch]
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.requestService.UpdateStatus(c.Request().Context(), c.Param("id"), userID, domain.RequestStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}
