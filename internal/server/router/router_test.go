package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunkbites/stallbook/internal/domain/models"
	"github.com/bunkbites/stallbook/internal/server/handlers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubLedger struct{}

func (stubLedger) ListDishes(context.Context) ([]models.Dish, error) { return []models.Dish{}, nil }
func (stubLedger) CreateDish(_ context.Context, in models.NewDishInput) (models.Dish, error) {
	return models.Dish{Name: in.Name}, nil
}
func (stubLedger) UpdateDish(context.Context, string, models.DishPatch) (models.Dish, error) {
	return models.Dish{}, nil
}
func (stubLedger) DeleteDish(context.Context, string) error          { return nil }
func (stubLedger) ListSales(context.Context) ([]models.Sale, error)  { return []models.Sale{}, nil }
func (stubLedger) CreateSale(_ context.Context, in models.NewSaleInput) (models.Sale, error) {
	return models.Sale{Date: in.Date}, nil
}
func (stubLedger) ListInvestors(context.Context) ([]models.Investor, error) {
	return []models.Investor{}, nil
}
func (stubLedger) CreateInvestor(context.Context, models.NewInvestorInput) (models.Investor, error) {
	return models.Investor{}, nil
}
func (stubLedger) UpdateInvestor(context.Context, string, models.InvestorPatch) (models.Investor, error) {
	return models.Investor{}, nil
}
func (stubLedger) DeleteInvestor(context.Context, string) error { return nil }
func (stubLedger) ListExpenses(context.Context) ([]models.Expense, error) {
	return []models.Expense{}, nil
}
func (stubLedger) CreateExpense(context.Context, models.NewExpenseInput) (models.Expense, error) {
	return models.Expense{}, nil
}
func (stubLedger) DeleteExpense(context.Context, string) error { return nil }

type stubReports struct{}

func (stubReports) Summary(context.Context) (models.Totals, error) { return models.Totals{}, nil }
func (stubReports) DishRanking(context.Context) ([]models.DishPerformance, error) {
	return []models.DishPerformance{}, nil
}
func (stubReports) DailyRange(context.Context, string, string) (models.RangeReport, error) {
	return models.RangeReport{}, nil
}
func (stubReports) ClosingReports(context.Context) ([]models.ClosingReport, error) {
	return []models.ClosingReport{}, nil
}

type stubAuth struct{}

func (stubAuth) Login(string, string) (string, int64, error) { return "token", 3600, nil }

type stubVerifier struct {
	subject string
	err     error
}

func (v stubVerifier) Verify(string) (string, error) { return v.subject, v.err }

func newTestEngine(verifier TokenVerifier) *gin.Engine {
	svc := stubLedger{}
	return New(Handlers{
		Dishes:    handlers.NewDishHandler(svc, nil),
		Sales:     handlers.NewSaleHandler(svc, nil),
		Investors: handlers.NewInvestorHandler(svc, nil),
		Expenses:  handlers.NewExpenseHandler(svc, nil),
		Reports:   handlers.NewReportHandler(stubReports{}, nil),
		Auth:      handlers.NewAuthHandler(stubAuth{}, nil),
	}, verifier, nil)
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpointsAreOpen(t *testing.T) {
	r := newTestEngine(stubVerifier{subject: "owner"})

	assert.Equal(t, http.StatusOK, get(r, "/healthz", "").Code)

	w := get(r, "/api", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"API Active"}`, w.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestEngine(stubVerifier{err: errors.New("invalid or expired token")})

	paths := []string{
		"/api/dishes",
		"/api/sales",
		"/api/investors",
		"/api/expenses",
		"/api/reports/summary",
		"/api/reports/closing",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, get(r, path, "").Code)
			assert.Equal(t, http.StatusUnauthorized, get(r, path, "bad-token").Code)
		})
	}
}

func TestProtectedRoutesAcceptValidToken(t *testing.T) {
	r := newTestEngine(stubVerifier{subject: "owner"})

	for _, path := range []string{"/api/dishes", "/api/sales", "/api/reports/summary"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, get(r, path, "good-token").Code)
		})
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r := newTestEngine(stubVerifier{subject: "owner"})

	w := get(r, "/healthz", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
