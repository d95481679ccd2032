package handler

import (
	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/service"
	"github.com/shopspring/decimal"
)

// Amounts are rendered with two decimals, percentages with one
func money(d decimal.Decimal) string { return d.StringFixed(2) }
func pct(d decimal.Decimal) string { return d.StringFixed(1) }

// IncomeEntryResponse represents a finalized income entry
type IncomeEntryResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// ShareResponse represents a contributor's share of the total income
type ShareResponse struct {
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

// IncomeResponse represents a finalized income
type IncomeResponse struct {
	Entries          []IncomeEntryResponse `json:"entries"`
	TotalIncome      string                `json:"totalIncome"`
	ContributorCount int                   `json:"contributorCount"`
}

// IncomePreviewResponse represents the live income total while editing
type IncomePreviewResponse struct {
	TotalIncome string          `json:"totalIncome"`
	Shares      []ShareResponse `json:"shares"`
}

// SubcategoryResponse represents a finalized subcategory
type SubcategoryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// CategoryResponse represents a finalized category
type CategoryResponse struct {
	ID                  domain.CategoryID     `json:"id"`
	Name                string                `json:"name"`
	AllowsSubcategories bool                  `json:"allowsSubcategories"`
	MainAmount          string                `json:"mainAmount"`
	Subcategories       []SubcategoryResponse `json:"subcategories"`
	Total               string                `json:"total"`
}

// BudgetResponse represents a finalized budget in catalog order
type BudgetResponse struct {
	Categories  []CategoryResponse `json:"categories"`
	TotalSpent  string             `json:"totalSpent"`
	TotalIncome string             `json:"totalIncome"`
	Remaining   string             `json:"remaining"`
}

// BudgetPreviewResponse represents the live budget totals while editing
type BudgetPreviewResponse struct {
	CategoryTotals map[domain.CategoryID]string `json:"categoryTotals"`
	TotalSpent     string                       `json:"totalSpent"`
	Remaining      string                       `json:"remaining"`
}

// SessionResponse represents the whole session
type SessionResponse struct {
	Stage     domain.Stage                `json:"stage"`
	NumPeople int                         `json:"numPeople"`
	RawIncome []domain.RawIncomeEntry     `json:"rawIncome"`
	RawBudget domain.RawBudget            `json:"rawBudget"`
	Income    *IncomeResponse             `json:"income"`
	Budget    *BudgetResponse             `json:"budget"`
	Catalog   []domain.CategoryDefinition `json:"catalog"`
}

// CategorySummaryResponse represents one category on the dashboard
type CategorySummaryResponse struct {
	ID            domain.CategoryID     `json:"id"`
	Name          string                `json:"name"`
	Total         string                `json:"total"`
	Percentage    string                `json:"percentage"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// SummaryResponse represents the dashboard view
type SummaryResponse struct {
	TotalIncome    string                    `json:"totalIncome"`
	TotalSpent     string                    `json:"totalSpent"`
	Remaining      string                    `json:"remaining"`
	UtilizationPct string                    `json:"utilizationPct"`
	OverBudget     bool                      `json:"overBudget"`
	Categories     []CategorySummaryResponse `json:"categories"`
	Contributors   []ShareResponse           `json:"contributors"`
}

// ReportLineResponse represents one report line
type ReportLineResponse struct {
	Section domain.ReportSection `json:"section"`
	Label   string               `json:"label"`
	Detail  string               `json:"detail"`
	Amount  string               `json:"amount"`
}

// ReportResponse represents the projected report
type ReportResponse struct {
	Lines []ReportLineResponse `json:"lines"`
}

func toShareResponses(shares []domain.ContributorShare) []ShareResponse {
	out := make([]ShareResponse, len(shares))
	for i, s := range shares {
		out[i] = ShareResponse{
			Name:       s.Name,
			Amount:     money(s.Amount),
			Percentage: pct(s.Percentage),
		}
	}
	return out
}

func toIncomeResponse(income *domain.IncomeResult) *IncomeResponse {
	if income == nil {
		return nil
	}
	entries := make([]IncomeEntryResponse, len(income.Entries))
	for i, e := range income.Entries {
		entries[i] = IncomeEntryResponse{Name: e.Name, Amount: money(e.Amount)}
	}
	return &IncomeResponse{
		Entries:          entries,
		TotalIncome:      money(income.TotalIncome),
		ContributorCount: income.ContributorCount,
	}
}

func toIncomePreviewResponse(preview *service.IncomePreview) IncomePreviewResponse {
	return IncomePreviewResponse{
		TotalIncome: money(preview.TotalIncome),
		Shares:      toShareResponses(preview.Shares),
	}
}

func toSubcategoryResponses(subs []domain.SubcategoryEntry) []SubcategoryResponse {
	out := make([]SubcategoryResponse, len(subs))
	for i, s := range subs {
		out[i] = SubcategoryResponse{ID: s.ID, Name: s.Name, Amount: money(s.Amount)}
	}
	return out
}

func toBudgetResponse(budget *domain.BudgetResult) *BudgetResponse {
	if budget == nil {
		return nil
	}
	categories := make([]CategoryResponse, 0, len(budget.Categories))
	for _, def := range domain.Catalog() {
		cat := budget.Category(def.ID)
		categories = append(categories, CategoryResponse{
			ID:                  def.ID,
			Name:                def.DisplayName,
			AllowsSubcategories: def.AllowsSubcategories,
			MainAmount:          money(cat.MainAmount),
			Subcategories:       toSubcategoryResponses(service.SortedSubcategories(cat.Subcategories)),
			Total:               money(cat.Total),
		})
	}
	return &BudgetResponse{
		Categories:  categories,
		TotalSpent:  money(budget.TotalSpent),
		TotalIncome: money(budget.TotalIncome),
		Remaining:   money(budget.Remaining),
	}
}

func toBudgetPreviewResponse(preview *service.BudgetPreview) BudgetPreviewResponse {
	totals := make(map[domain.CategoryID]string, len(preview.CategoryTotals))
	for id, total := range preview.CategoryTotals {
		totals[id] = money(total)
	}
	return BudgetPreviewResponse{
		CategoryTotals: totals,
		TotalSpent:     money(preview.TotalSpent),
		Remaining:      money(preview.Remaining),
	}
}

func toSessionResponse(st domain.SessionState) SessionResponse {
	return SessionResponse{
		Stage:     st.Stage,
		NumPeople: st.NumPeople,
		RawIncome: st.RawIncome,
		RawBudget: st.RawBudget,
		Income:    toIncomeResponse(st.Income),
		Budget:    toBudgetResponse(st.Budget),
		Catalog:   domain.Catalog(),
	}
}

func toSummaryResponse(view *domain.SummaryView) SummaryResponse {
	categories := make([]CategorySummaryResponse, len(view.Categories))
	for i, c := range view.Categories {
		categories[i] = CategorySummaryResponse{
			ID:            c.ID,
			Name:          c.Name,
			Total:         money(c.Total),
			Percentage:    pct(c.Percentage),
			Subcategories: toSubcategoryResponses(c.Subcategories),
		}
	}
	return SummaryResponse{
		TotalIncome:    money(view.TotalIncome),
		TotalSpent:     money(view.TotalSpent),
		Remaining:      money(view.Remaining),
		UtilizationPct: pct(view.UtilizationPct),
		OverBudget:     view.OverBudget,
		Categories:     categories,
		Contributors:   toShareResponses(view.Contributors),
	}
}

func toReportResponse(lines domain.ReportLines) ReportResponse {
	out := make([]ReportLineResponse, len(lines))
	for i, l := range lines {
		out[i] = ReportLineResponse{
			Section: l.Section,
			Label:   l.Label,
			Detail:  l.Detail,
			Amount:  money(l.Amount),
		}
	}
	return ReportResponse{Lines: out}
}
