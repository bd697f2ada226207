package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/drjp81/devsecops-assessments/internal/services"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

func TestCreateCompanyRedirects(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{}
	form.Set("name", "Acme")
	form.Set("contact_person", "J. Doe")
	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/companies" {
		t.Fatalf("expected redirect to /companies, got %q", loc)
	}
	var count int64
	if err := env.db.Model(&types.Company{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 company, got %d", count)
	}
}

func TestCreateCompanyBlankNameReturns400(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{}
	form.Set("name", "   ")
	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCompanyListPageShowsCompanies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	if _, err := env.company.Create(ctx, services.CreateCompanyInput{Name: "Borealis Labs"}); err != nil {
		t.Fatalf("seed company: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Borealis Labs") {
		t.Fatalf("expected page to include the company name")
	}
}

func TestCompanyDetailMissingReturns404(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/companies/9999", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "company not found") {
		t.Fatalf("expected plain not-found body, got %q", rec.Body.String())
	}
}
