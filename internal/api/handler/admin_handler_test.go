package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type stubAdminService struct {
	statsFn               func(ctx context.Context) (*ports.AdminStats, error)
	createCategoryFn      func(ctx context.Context, name string, categoryType domain.CategoryType) (*domain.Category, error)
	renameCategoryFn      func(ctx context.Context, id, name string) (*domain.Category, error)
	createEstablishmentFn func(ctx context.Context, input ports.EstablishmentInput) (*domain.Establishment, error)
	updateEstablishmentFn func(ctx context.Context, id string, input ports.EstablishmentInput) (*domain.Establishment, error)
	createPlanFn          func(ctx context.Context, input ports.PlanInput) (*domain.Plan, error)
	updatePlanFn          func(ctx context.Context, id string, input ports.PlanInput) (*domain.Plan, error)
	setUserActiveFn       func(ctx context.Context, userID string, active bool) error
}

func (s *stubAdminService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	return s.statsFn(ctx)
}

func (s *stubAdminService) CreateCategory(ctx context.Context, name string, categoryType domain.CategoryType) (*domain.Category, error) {
	return s.createCategoryFn(ctx, name, categoryType)
}

func (s *stubAdminService) RenameCategory(ctx context.Context, id, name string) (*domain.Category, error) {
	return s.renameCategoryFn(ctx, id, name)
}

func (s *stubAdminService) CreateEstablishment(ctx context.Context, input ports.EstablishmentInput) (*domain.Establishment, error) {
	return s.createEstablishmentFn(ctx, input)
}

func (s *stubAdminService) UpdateEstablishment(ctx context.Context, id string, input ports.EstablishmentInput) (*domain.Establishment, error) {
	return s.updateEstablishmentFn(ctx, id, input)
}

func (s *stubAdminService) CreatePlan(ctx context.Context, input ports.PlanInput) (*domain.Plan, error) {
	return s.createPlanFn(ctx, input)
}

func (s *stubAdminService) UpdatePlan(ctx context.Context, id string, input ports.PlanInput) (*domain.Plan, error) {
	return s.updatePlanFn(ctx, id, input)
}

func (s *stubAdminService) SetUserActive(ctx context.Context, userID string, active bool) error {
	return s.setUserActiveFn(ctx, userID, active)
}

func TestAdminHandler_CreateEstablishment(t *testing.T) {
	e := newTestEcho()
	var captured ports.EstablishmentInput
	handler := NewAdminHandler(&stubAdminService{
		createEstablishmentFn: func(_ context.Context, input ports.EstablishmentInput) (*domain.Establishment, error) {
			captured = input
			return &domain.Establishment{ID: "est1", Name: input.Name, City: input.City, IsActive: true}, nil
		},
	})

	body := strings.NewReader(`{"name":"Corte Central","city":"Santiago","latitude":-33.45,"longitude":-70.66}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/establishments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateEstablishment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Name != "Corte Central" || captured.City != "Santiago" {
		t.Fatalf("input not forwarded: %+v", captured)
	}
	if captured.Latitude == nil || *captured.Latitude != -33.45 {
		t.Fatalf("latitude not forwarded: %+v", captured)
	}

	var out domain.Establishment
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if out.ID != "est1" || !out.IsActive {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestAdminHandler_CreateEstablishment_RequiresName(t *testing.T) {
	e := newTestEcho()
	handler := NewAdminHandler(&stubAdminService{
		createEstablishmentFn: func(context.Context, ports.EstablishmentInput) (*domain.Establishment, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/establishments", strings.NewReader(`{"city":"Santiago"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := handler.CreateEstablishment(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminHandler_UpdateEstablishment(t *testing.T) {
	e := newTestEcho()
	var gotID string
	handler := NewAdminHandler(&stubAdminService{
		updateEstablishmentFn: func(_ context.Context, id string, input ports.EstablishmentInput) (*domain.Establishment, error) {
			gotID = id
			return &domain.Establishment{ID: id, Name: input.Name}, nil
		},
	})

	body := strings.NewReader(`{"name":"New Name"}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/establishments/est1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("est1")

	if err := handler.UpdateEstablishment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || gotID != "est1" {
		t.Fatalf("unexpected result: code=%d id=%s", rec.Code, gotID)
	}
}

func TestAdminHandler_CreatePlan(t *testing.T) {
	e := newTestEcho()
	var captured ports.PlanInput
	handler := NewAdminHandler(&stubAdminService{
		createPlanFn: func(_ context.Context, input ports.PlanInput) (*domain.Plan, error) {
			captured = input
			return &domain.Plan{ID: "plan1", Tier: input.Tier, Name: input.Name, Price: input.Price, Active: input.Active}, nil
		},
	})

	body := strings.NewReader(`{"tier":"gold","name":"Gold","price":19990,"active":true}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/plans", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreatePlan(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Tier != domain.TierGold || captured.Price != 19990 || !captured.Active {
		t.Fatalf("input not forwarded: %+v", captured)
	}
}

func TestAdminHandler_CreatePlan_RejectsUnknownTier(t *testing.T) {
	e := newTestEcho()
	handler := NewAdminHandler(&stubAdminService{
		createPlanFn: func(context.Context, ports.PlanInput) (*domain.Plan, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"tier":"platinum","name":"Platinum","price":1,"active":true}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/plans", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := handler.CreatePlan(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminHandler_UpdatePlan(t *testing.T) {
	e := newTestEcho()
	var gotID string
	handler := NewAdminHandler(&stubAdminService{
		updatePlanFn: func(_ context.Context, id string, input ports.PlanInput) (*domain.Plan, error) {
			gotID = id
			return &domain.Plan{ID: id, Tier: input.Tier, Name: input.Name, Price: input.Price, Active: input.Active}, nil
		},
	})

	body := strings.NewReader(`{"tier":"silver","name":"Silver Annual","price":99990,"active":false}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/plans/plan1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("plan1")

	if err := handler.UpdatePlan(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || gotID != "plan1" {
		t.Fatalf("unexpected result: code=%d id=%s", rec.Code, gotID)
	}
}
