package product

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/finex/backend/internal/domain/entity"
)

// Category tab values besides a category id.
const (
	CategoryTabAll           = "all"
	CategoryTabUncategorized = "uncategorized"
	CategoryTabDeleted       = "deleted"
)

// CatalogQuery is the UI state the catalog view is computed for.
type CatalogQuery struct {
	MainTab     entity.Kind
	CategoryTab string // "all", "deleted", "uncategorized" or a category id
	Search      string
	Selected    []uuid.UUID
}

// CategoryGroup is one category tab with the number of products it holds.
type CategoryGroup struct {
	ID    string // Category id or "uncategorized"
	Name  string // Empty for the uncategorized group
	Count int
}

// CatalogView holds every partition the catalog screen renders.
type CatalogView struct {
	IncomeCount  int
	ExpenseCount int
	Groups       []CategoryGroup
	Filtered     []*entity.ProductWithCategory // Main tab after search
	Rows         []*entity.ProductWithCategory // Visible rows of the current tab
	Inactive     []*entity.ProductWithCategory // Inactive products of the main tab
	Selection    *Selection
	AllSelected  bool
	SomeSelected bool
	CategoryTab  string
	MainTab      entity.Kind
}

// BuildCatalogView partitions the operator's products for display.
// Grouping is computed on the main tab before search; search runs before the category tab filter.
// Selected ids that do not belong to the main tab are dropped.
func BuildCatalogView(active, inactive []*entity.ProductWithCategory, query CatalogQuery) *CatalogView {
	mainTab := query.MainTab
	if !mainTab.IsValid() {
		mainTab = entity.KindIncome
	}
	tab := query.CategoryTab
	if tab == "" {
		tab = CategoryTabAll
	}

	view := &CatalogView{
		MainTab:     mainTab,
		CategoryTab: tab,
	}

	var ofKind []*entity.ProductWithCategory
	for _, p := range active {
		switch p.Product.Kind {
		case entity.KindIncome:
			view.IncomeCount++
		case entity.KindExpense:
			view.ExpenseCount++
		}
		if p.Product.Kind == mainTab {
			ofKind = append(ofKind, p)
		}
	}

	view.Inactive = []*entity.ProductWithCategory{}
	for _, p := range inactive {
		if p.Product.Kind == mainTab {
			view.Inactive = append(view.Inactive, p)
		}
	}

	view.Groups = groupByCategory(ofKind)
	view.Filtered = searchProducts(ofKind, query.Search)

	if tab == CategoryTabDeleted {
		view.Rows = view.Inactive
	} else {
		view.Rows = filterByCategoryTab(view.Filtered, tab)
	}

	inMainTab := make(map[uuid.UUID]struct{}, len(ofKind)+len(view.Inactive))
	for _, p := range ofKind {
		inMainTab[p.Product.ID] = struct{}{}
	}
	for _, p := range view.Inactive {
		inMainTab[p.Product.ID] = struct{}{}
	}
	view.Selection = NewSelection(query.Selected...)
	view.Selection.Retain(inMainTab)

	visible := RowIDs(view.Rows)
	view.AllSelected = view.Selection.AllSelected(visible)
	view.SomeSelected = view.Selection.SomeSelected(visible)

	return view
}

// RowIDs returns the product ids of rows in order.
func RowIDs(rows []*entity.ProductWithCategory) []uuid.UUID {
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.Product.ID
	}
	return ids
}

// categoryTabOf returns the tab a product is listed under. A product whose category
// no longer exists is uncategorized.
func categoryTabOf(p *entity.ProductWithCategory) string {
	if p.Product.CategoryID == nil || p.Category == nil {
		return CategoryTabUncategorized
	}
	return p.Product.CategoryID.String()
}

func groupByCategory(products []*entity.ProductWithCategory) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, p := range products {
		id := categoryTabOf(p)
		i, ok := index[id]
		if !ok {
			group := CategoryGroup{ID: id}
			if id != CategoryTabUncategorized {
				group.Name = p.Category.Name
			}
			groups = append(groups, group)
			i = len(groups) - 1
			index[id] = i
		}
		groups[i].Count++
	}

	collator := collate.New(language.Portuguese)
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.ID == CategoryTabUncategorized {
			return false
		}
		if b.ID == CategoryTabUncategorized {
			return true
		}
		return collator.CompareString(a.Name, b.Name) < 0
	})

	return groups
}

func searchProducts(products []*entity.ProductWithCategory, search string) []*entity.ProductWithCategory {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return products
	}

	var matched []*entity.ProductWithCategory
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Product.Name), term) ||
			strings.Contains(strings.ToLower(p.Product.CodeValue()), term) ||
			strings.Contains(strings.ToLower(p.Product.DescriptionValue()), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

func filterByCategoryTab(products []*entity.ProductWithCategory, tab string) []*entity.ProductWithCategory {
	if tab == CategoryTabAll {
		return products
	}

	var rows []*entity.ProductWithCategory
	for _, p := range products {
		if categoryTabOf(p) == tab {
			rows = append(rows, p)
		}
	}
	return rows
}
