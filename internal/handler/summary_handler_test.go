package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary_BeforeDashboard(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/summary", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/income", householdIncome).Code)
	rec = api.do(t, http.MethodGet, "/api/v1/summary", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetSummary(t *testing.T) {
	api := newTestAPI(t)
	api.toDashboard(t)

	rec := api.do(t, http.MethodGet, "/api/v1/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SummaryResponse
	decode(t, rec, &resp)
	assert.Equal(t, "5000.00", resp.TotalIncome)
	assert.Equal(t, "3500.00", resp.TotalSpent)
	assert.Equal(t, "1500.00", resp.Remaining)
	assert.Equal(t, "70.0", resp.UtilizationPct)
	assert.False(t, resp.OverBudget)

	require.Len(t, resp.Categories, 6)
	assert.Equal(t, domain.CategoryRentFamily, resp.Categories[0].ID)
	assert.Equal(t, "30.0", resp.Categories[0].Percentage)

	require.Len(t, resp.Contributors, 2)
	assert.Equal(t, ShareResponse{Name: "Alex", Amount: "3000.00", Percentage: "60.0"}, resp.Contributors[0])
	assert.Equal(t, ShareResponse{Name: "Sam", Amount: "2000.00", Percentage: "40.0"}, resp.Contributors[1])
}

func TestGetSummary_OverBudget(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/income", householdIncome).Code)

	budget := householdBudget()
	budget.Categories[domain.CategorySavings] = domain.RawCategoryState{Main: "2500"}
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/budget", budget).Code)

	var resp SummaryResponse
	decode(t, api.do(t, http.MethodGet, "/api/v1/summary", nil), &resp)
	assert.Equal(t, "-1000.00", resp.Remaining)
	assert.Equal(t, "120.0", resp.UtilizationPct)
	assert.True(t, resp.OverBudget)
}
