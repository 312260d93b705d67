package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type stubDirectoryService struct {
	searchProfessionalsFn  func(ctx context.Context, input ports.SearchInput) ([]ports.ProfessionalEntry, error)
	getProfessionalFn      func(ctx context.Context, id, viewerID string) (*ports.ProfessionalDetail, error)
	searchEstablishmentsFn func(ctx context.Context, input ports.SearchInput) ([]ports.EstablishmentEntry, error)
	getEstablishmentFn     func(ctx context.Context, id string) (*ports.EstablishmentEntry, error)
	listCategoriesFn       func(ctx context.Context, categoryType string) ([]*domain.Category, error)
	listPlansFn            func(ctx context.Context) ([]*domain.Plan, error)
}

func (s *stubDirectoryService) SearchProfessionals(ctx context.Context, input ports.SearchInput) ([]ports.ProfessionalEntry, error) {
	return s.searchProfessionalsFn(ctx, input)
}

func (s *stubDirectoryService) GetProfessional(ctx context.Context, id, viewerID string) (*ports.ProfessionalDetail, error) {
	return s.getProfessionalFn(ctx, id, viewerID)
}

func (s *stubDirectoryService) SearchEstablishments(ctx context.Context, input ports.SearchInput) ([]ports.EstablishmentEntry, error) {
	return s.searchEstablishmentsFn(ctx, input)
}

func (s *stubDirectoryService) GetEstablishment(ctx context.Context, id string) (*ports.EstablishmentEntry, error) {
	return s.getEstablishmentFn(ctx, id)
}

func (s *stubDirectoryService) ListCategories(ctx context.Context, categoryType string) ([]*domain.Category, error) {
	return s.listCategoriesFn(ctx, categoryType)
}

func (s *stubDirectoryService) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	return s.listPlansFn(ctx)
}

func TestSearchProfessionals_ParsesQueryParams(t *testing.T) {
	e := newTestEcho()
	var captured ports.SearchInput
	handler := NewDirectoryHandler(&stubDirectoryService{
		searchProfessionalsFn: func(_ context.Context, input ports.SearchInput) ([]ports.ProfessionalEntry, error) {
			captured = input
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/v1/directory/professionals?lat=-33.45&lng=-70.66&range=25&rating=4&gender=female&plan=premium&categoryId=cat1&active=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SearchProfessionals(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if captured.Lat == nil || *captured.Lat != -33.45 {
		t.Fatalf("lat not parsed: %+v", captured)
	}
	if captured.RangeKm == nil || *captured.RangeKm != 25 {
		t.Fatalf("range not parsed: %+v", captured)
	}
	if captured.MinRating == nil || *captured.MinRating != 4 {
		t.Fatalf("rating not parsed: %+v", captured)
	}
	if captured.Gender != "female" || captured.PlanTier != "premium" || captured.CategoryID != "cat1" {
		t.Fatalf("string filters not parsed: %+v", captured)
	}
	if captured.Active == nil || !*captured.Active {
		t.Fatalf("active not parsed: %+v", captured)
	}
}

func TestSearchProfessionals_OmittedParamsStayNil(t *testing.T) {
	e := newTestEcho()
	handler := NewDirectoryHandler(&stubDirectoryService{
		searchProfessionalsFn: func(_ context.Context, input ports.SearchInput) ([]ports.ProfessionalEntry, error) {
			if input.Lat != nil || input.RangeKm != nil || input.MinRating != nil || input.Active != nil {
				t.Fatalf("omitted filters must stay nil: %+v", input)
			}
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/directory/professionals", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := handler.SearchProfessionals(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestSearchProfessionals_BadParams(t *testing.T) {
	e := newTestEcho()
	handler := NewDirectoryHandler(&stubDirectoryService{
		searchProfessionalsFn: func(context.Context, ports.SearchInput) ([]ports.ProfessionalEntry, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	})

	cases := []string{
		"/v1/directory/professionals?lat=abc",
		"/v1/directory/professionals?active=maybe",
	}
	for _, url := range cases {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		c := e.NewContext(req, httptest.NewRecorder())

		err := handler.SearchProfessionals(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", url, err)
		}
	}
}

func TestSearchProfessionals_RangeWithoutPositionReturnsAll(t *testing.T) {
	e := newTestEcho()
	handler := NewDirectoryHandler(&stubDirectoryService{
		searchProfessionalsFn: func(_ context.Context, input ports.SearchInput) ([]ports.ProfessionalEntry, error) {
			if input.RangeKm == nil || *input.RangeKm != 25 {
				t.Fatalf("range not passed through: %+v", input)
			}
			if input.Lat != nil || input.Lng != nil {
				t.Fatalf("position must stay nil: %+v", input)
			}
			return []ports.ProfessionalEntry{{ID: "p1"}, {ID: "p2"}}, nil
		},
	})

	// No position means no distances; the radius filter applies to nothing.
	req := httptest.NewRequest(http.MethodGet, "/v1/directory/professionals?range=25", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SearchProfessionals(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetProfessional_PassesViewerFromClaims(t *testing.T) {
	e := newTestEcho()
	var gotViewer string
	handler := NewDirectoryHandler(&stubDirectoryService{
		getProfessionalFn: func(_ context.Context, id, viewerID string) (*ports.ProfessionalDetail, error) {
			gotViewer = viewerID
			return &ports.ProfessionalDetail{ProfessionalEntry: ports.ProfessionalEntry{ID: id}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/directory/professionals/pro1", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("pro1")
	c.Set("user_id", "client1")

	if err := handler.GetProfessional(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotViewer != "client1" {
		t.Fatalf("expected viewer from claims, got %q", gotViewer)
	}
}
