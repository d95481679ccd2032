package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/report"
	"github.com/dafibh/budget-planner/internal/service"
	"github.com/dafibh/budget-planner/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	e       *echo.Echo
	session *service.SessionService
	export  *service.ExportService
	store   *testutil.MockStateStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := testutil.NewMockStateStore()
	incomeService := service.NewIncomeService()
	sessionService := service.NewSessionService(
		store,
		incomeService,
		service.NewBudgetService(),
		service.NewSummaryService(incomeService),
		service.NewReportService(),
	)
	exportService := service.NewExportService(
		sessionService,
		report.NewPDFRenderer(""),
		report.NewXLSXRenderer(),
		report.DefaultPageThreshold,
	)

	e := echo.New()
	RegisterRoutes(e, Handlers{
		Session: NewSessionHandler(sessionService),
		Income:  NewIncomeHandler(sessionService),
		Budget:  NewBudgetHandler(sessionService),
		Summary: NewSummaryHandler(sessionService),
		Report:  NewReportHandler(sessionService, exportService),
	})

	return &testAPI{e: e, session: sessionService, export: exportService, store: store}
}

// do sends a request through the router. A nil body sends no body at all.
func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

var householdIncome = IncomeRequest{
	NumPeople: 2,
	Incomes: []domain.RawIncomeEntry{
		{Name: "Alex", Amount: "3000"},
		{Name: "Sam", Amount: "2000"},
	},
}

func householdBudget() BudgetRequest {
	raw := domain.NewRawBudget()
	raw[domain.CategoryRentFamily] = domain.RawCategoryState{
		Subcategories: map[string]domain.RawSubcategory{
			"sub_1": {Name: "Rent", Amount: "1000"},
			"sub_2": {Name: "Mom", Amount: "500"},
		},
	}
	raw[domain.CategoryGroceries] = domain.RawCategoryState{Main: "800"}
	raw[domain.CategoryPlannedPurchases] = domain.RawCategoryState{
		Subcategories: map[string]domain.RawSubcategory{
			"sub_3": {Name: "Laptop", Amount: "1200"},
		},
	}
	return BudgetRequest{Categories: raw}
}

// toDashboard submits the household income and budget
func (a *testAPI) toDashboard(t *testing.T) {
	t.Helper()
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/api/v1/income", householdIncome).Code)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/api/v1/budget", householdBudget()).Code)
}
