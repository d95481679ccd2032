package domain

// CategoryID is the stable identifier of a budget category
type CategoryID string

const (
	CategoryRentFamily       CategoryID = "rent_family"
	CategoryDebts            CategoryID = "debts"
	CategoryGroceries        CategoryID = "groceries"
	CategorySavings          CategoryID = "savings"
	CategoryInvestments      CategoryID = "investments"
	CategoryPlannedPurchases CategoryID = "planned_purchases"
)

// CategoryDefinition is a static catalog entry. The catalog is fixed and not user-editable.
type CategoryDefinition struct {
	ID                  CategoryID `json:"id"`
	DisplayName         string     `json:"displayName"`
	AllowsSubcategories bool       `json:"allowsSubcategories"`
}

var catalog = []CategoryDefinition{
	{ID: CategoryRentFamily, DisplayName: "Rent & Family", AllowsSubcategories: true},
	{ID: CategoryDebts, DisplayName: "Debts", AllowsSubcategories: true},
	{ID: CategoryGroceries, DisplayName: "Groceries", AllowsSubcategories: false},
	{ID: CategorySavings, DisplayName: "Savings", AllowsSubcategories: false},
	{ID: CategoryInvestments, DisplayName: "Investments", AllowsSubcategories: true},
	{ID: CategoryPlannedPurchases, DisplayName: PlannedPurchasesName, AllowsSubcategories: true},
}

// Catalog returns the six budget categories in display order
func Catalog() []CategoryDefinition {
	out := make([]CategoryDefinition, len(catalog))
	copy(out, catalog)
	return out
}

// LookupCategory returns the catalog entry for id
func LookupCategory(id CategoryID) (CategoryDefinition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return CategoryDefinition{}, false
}

// PlannedPurchasesName is the display name of the category that reports break out
// after fixed expenses
const PlannedPurchasesName = "Planned Purchases"

// IsPlannedPurchases reports whether the category is broken out separately in reports
func (d CategoryDefinition) IsPlannedPurchases() bool {
	return d.DisplayName == PlannedPurchasesName
}
