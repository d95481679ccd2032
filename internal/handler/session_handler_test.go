package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSession_Initial(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, domain.StageIncome, resp.Stage)
	assert.Len(t, resp.RawIncome, 1)
	assert.Len(t, resp.RawBudget, 6)
	assert.Nil(t, resp.Income)
	assert.Nil(t, resp.Budget)
	require.Len(t, resp.Catalog, 6)
	assert.Equal(t, "Rent & Family", resp.Catalog[0].DisplayName)
}

func TestSessionBack_KeepsIncomeDraft(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/income", householdIncome).Code)

	rec := api.do(t, http.MethodPost, "/api/v1/session/back", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, domain.StageIncome, resp.Stage)
	assert.Equal(t, householdIncome.Incomes, resp.RawIncome)
	assert.Equal(t, 2, resp.NumPeople)
}

func TestSessionEdit_ReturnsToBudget(t *testing.T) {
	api := newTestAPI(t)
	api.toDashboard(t)

	rec := api.do(t, http.MethodPost, "/api/v1/session/edit", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, domain.StageBudget, resp.Stage)
	assert.Nil(t, resp.Budget)
	assert.Equal(t, "800", resp.RawBudget[domain.CategoryGroceries].Main)

	// Summary is unavailable until the budget is submitted again
	assert.Equal(t, http.StatusConflict, api.do(t, http.MethodGet, "/api/v1/summary", nil).Code)
}

func TestSessionTransitions_WrongStage(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusConflict, api.do(t, http.MethodPost, "/api/v1/session/back", nil).Code)
	assert.Equal(t, http.StatusConflict, api.do(t, http.MethodPost, "/api/v1/session/edit", nil).Code)
}

func TestSessionReset(t *testing.T) {
	api := newTestAPI(t)
	api.toDashboard(t)

	rec := api.do(t, http.MethodPost, "/api/v1/session/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, domain.StageIncome, resp.Stage)
	assert.Nil(t, resp.Income)
	assert.False(t, api.store.Has(domain.IncomeStateKey))
	assert.False(t, api.store.Has(domain.BudgetStateKey))
}
