package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Order(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 6)

	ids := make([]CategoryID, len(catalog))
	for i, def := range catalog {
		ids[i] = def.ID
	}
	assert.Equal(t, []CategoryID{
		CategoryRentFamily, CategoryDebts, CategoryGroceries,
		CategorySavings, CategoryInvestments, CategoryPlannedPurchases,
	}, ids)

	// Catalog returns a copy
	catalog[0].DisplayName = "changed"
	assert.Equal(t, "Rent & Family", Catalog()[0].DisplayName)
}

func TestCategoryDefinition_IsPlannedPurchases(t *testing.T) {
	for _, def := range Catalog() {
		assert.Equal(t, def.ID == CategoryPlannedPurchases, def.IsPlannedPurchases(), string(def.ID))
	}
}

func TestRawBudget_AddSubcategory(t *testing.T) {
	raw := NewRawBudget()

	first, err := raw.AddSubcategory(CategoryDebts)
	require.NoError(t, err)
	second, err := raw.AddSubcategory(CategoryDebts)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "sub_"))
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second, "ids follow creation order")
	assert.Len(t, raw[CategoryDebts].Subcategories, 2)
	assert.Equal(t, RawSubcategory{}, raw[CategoryDebts].Subcategories[first])
}

func TestRawBudget_AddSubcategoryErrors(t *testing.T) {
	raw := NewRawBudget()

	_, err := raw.AddSubcategory(CategoryGroceries)
	assert.ErrorIs(t, err, ErrSubcategoriesNotAllowed)

	_, err = raw.AddSubcategory("holidays")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRawBudget_UpdateAndRemove(t *testing.T) {
	raw := NewRawBudget()
	id, err := raw.AddSubcategory(CategoryInvestments)
	require.NoError(t, err)

	require.NoError(t, raw.UpdateSubcategory(CategoryInvestments, id, RawSubcategory{Name: "Index fund", Amount: "250"}))
	assert.Equal(t, "Index fund", raw[CategoryInvestments].Subcategories[id].Name)

	assert.ErrorIs(t, raw.UpdateSubcategory(CategoryInvestments, "sub_missing", RawSubcategory{}), ErrSubcategoryNotFound)

	require.NoError(t, raw.RemoveSubcategory(CategoryInvestments, id))
	assert.Empty(t, raw[CategoryInvestments].Subcategories)
	assert.ErrorIs(t, raw.RemoveSubcategory(CategoryInvestments, id), ErrSubcategoryNotFound)
}

func TestRawBudget_SetMainOnMissingCategoryState(t *testing.T) {
	raw := RawBudget{}

	require.NoError(t, raw.SetMain(CategorySavings, "100"))
	assert.Equal(t, "100", raw[CategorySavings].Main)
	assert.NotNil(t, raw[CategorySavings].Subcategories)

	assert.ErrorIs(t, raw.SetMain("unknown", "1"), ErrUnknownCategory)
}

func TestRawBudget_Clone(t *testing.T) {
	raw := NewRawBudget()
	id, err := raw.AddSubcategory(CategoryRentFamily)
	require.NoError(t, err)

	clone := raw.Clone()
	require.NoError(t, clone.UpdateSubcategory(CategoryRentFamily, id, RawSubcategory{Name: "Rent", Amount: "900"}))
	require.NoError(t, clone.SetMain(CategoryGroceries, "50"))

	assert.Equal(t, RawSubcategory{}, raw[CategoryRentFamily].Subcategories[id])
	assert.Equal(t, "", raw[CategoryGroceries].Main)

	assert.Nil(t, RawBudget(nil).Clone())
}

func TestBudgetResult_CategoryFallback(t *testing.T) {
	result := &BudgetResult{Categories: map[CategoryID]*CategoryResult{}}

	cat := result.Category(CategorySavings)
	assert.Equal(t, "Savings", cat.Definition.DisplayName)
	assert.True(t, cat.Total.Equal(decimal.Zero))
	assert.NotNil(t, cat.Subcategories)
}
