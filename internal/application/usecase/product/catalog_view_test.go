package product

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finex/backend/internal/domain/entity"
)

type catalogFixture struct {
	zeta, alpha *entity.Category
	active      []*entity.ProductWithCategory
	inactive    []*entity.ProductWithCategory
}

func row(name, code, description string, kind entity.Kind, category *entity.Category, active bool) *entity.ProductWithCategory {
	var categoryID *uuid.UUID
	if category != nil {
		categoryID = &category.ID
	}
	var descriptionPtr *string
	if description != "" {
		descriptionPtr = &description
	}
	var codePtr *string
	if code != "" {
		codePtr = &code
	}
	p := entity.NewProduct(name, codePtr, descriptionPtr, decimal.NewFromInt(1), categoryID, nil, kind)
	p.Active = active
	return &entity.ProductWithCategory{Product: p, Category: category}
}

func newCatalogFixture() catalogFixture {
	zeta := entity.NewCategory("Zeta", entity.KindIncome)
	alpha := entity.NewCategory("Alpha", entity.KindIncome)
	rent := entity.NewCategory("Rent", entity.KindExpense)

	return catalogFixture{
		zeta:  zeta,
		alpha: alpha,
		active: []*entity.ProductWithCategory{
			row("Haircut", "JOA001", "short cut", entity.KindIncome, zeta, true),
			row("Coloring", "JOA002", "", entity.KindIncome, alpha, true),
			row("Tip", "JOA003", "", entity.KindIncome, nil, true),
			row("Beard", "JOA004", "HAIRcare extra", entity.KindIncome, alpha, true),
			row("Office", "JOA005", "", entity.KindExpense, rent, true),
		},
		inactive: []*entity.ProductWithCategory{
			row("Old service", "", "", entity.KindIncome, nil, false),
			row("Old rent", "", "", entity.KindExpense, rent, false),
		},
	}
}

func TestBuildCatalogView_Partitions(t *testing.T) {
	f := newCatalogFixture()

	view := BuildCatalogView(f.active, f.inactive, CatalogQuery{MainTab: entity.KindIncome})

	assert.Equal(t, 4, view.IncomeCount)
	assert.Equal(t, 1, view.ExpenseCount)
	require.Len(t, view.Groups, 3)
	assert.Equal(t, "Alpha", view.Groups[0].Name)
	assert.Equal(t, 2, view.Groups[0].Count)
	assert.Equal(t, "Zeta", view.Groups[1].Name)
	assert.Equal(t, CategoryTabUncategorized, view.Groups[2].ID)

	total := 0
	for _, g := range view.Groups {
		total += g.Count
	}
	assert.Equal(t, len(view.Filtered), total)
	assert.Len(t, view.Rows, 4)
	require.Len(t, view.Inactive, 1)
	assert.Equal(t, "Old service", view.Inactive[0].Product.Name)
}

func TestBuildCatalogView_UncategorizedAlwaysLast(t *testing.T) {
	aaa := entity.NewCategory("zzz", entity.KindIncome)
	active := []*entity.ProductWithCategory{
		row("No category", "", "", entity.KindIncome, nil, true),
		row("Named", "", "", entity.KindIncome, aaa, true),
	}

	view := BuildCatalogView(active, nil, CatalogQuery{MainTab: entity.KindIncome})

	require.Len(t, view.Groups, 2)
	assert.Equal(t, aaa.ID.String(), view.Groups[0].ID)
	assert.Equal(t, CategoryTabUncategorized, view.Groups[1].ID)
}

func TestBuildCatalogView_GroupsFollowCollation(t *testing.T) {
	bebidas := entity.NewCategory("Bebidas", entity.KindIncome)
	agua := entity.NewCategory("Água", entity.KindIncome)
	cafe := entity.NewCategory("café", entity.KindIncome)
	active := []*entity.ProductWithCategory{
		row("Suco", "", "", entity.KindIncome, bebidas, true),
		row("Garrafa", "", "", entity.KindIncome, agua, true),
		row("Expresso", "", "", entity.KindIncome, cafe, true),
	}

	view := BuildCatalogView(active, nil, CatalogQuery{MainTab: entity.KindIncome})

	var names []string
	for _, g := range view.Groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Água", "Bebidas", "café"}, names)
}

func TestBuildCatalogView_Search(t *testing.T) {
	f := newCatalogFixture()

	tests := []struct {
		name   string
		search string
		tab    string
		want   []string
	}{
		{"empty search leaves set unchanged", "", CategoryTabAll, []string{"Haircut", "Coloring", "Tip", "Beard"}},
		{"matches name case-insensitively", "HAIR", CategoryTabAll, []string{"Haircut", "Beard"}},
		{"matches code", "joa003", CategoryTabAll, []string{"Tip"}},
		{"matches description", "short", CategoryTabAll, []string{"Haircut"}},
		{"kind filter runs first", "office", CategoryTabAll, nil},
		{"category tab after search", "hair", "", []string{"Beard"}},
		{"uncategorized tab", "", CategoryTabUncategorized, []string{"Tip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := tt.tab
			if tab == "" {
				tab = f.alpha.ID.String()
			}
			view := BuildCatalogView(f.active, f.inactive, CatalogQuery{MainTab: entity.KindIncome, CategoryTab: tab, Search: tt.search})

			var names []string
			for _, r := range view.Rows {
				names = append(names, r.Product.Name)
			}
			assert.Equal(t, tt.want, names)
			assert.Len(t, view.Groups, 3, "groups ignore search")
		})
	}
}

func TestBuildCatalogView_DeletedTab(t *testing.T) {
	f := newCatalogFixture()

	view := BuildCatalogView(f.active, f.inactive, CatalogQuery{MainTab: entity.KindExpense, CategoryTab: CategoryTabDeleted, Search: "nothing"})

	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Old rent", view.Rows[0].Product.Name)
}

func TestBuildCatalogView_Selection(t *testing.T) {
	f := newCatalogFixture()
	haircut := f.active[0].Product.ID
	office := f.active[4].Product.ID

	view := BuildCatalogView(f.active, f.inactive, CatalogQuery{
		MainTab:  entity.KindIncome,
		Selected: []uuid.UUID{haircut, office},
	})
	assert.Equal(t, []uuid.UUID{haircut}, view.Selection.IDs(), "other kind dropped")
	assert.True(t, view.SomeSelected)
	assert.False(t, view.AllSelected)

	view = BuildCatalogView(f.active, f.inactive, CatalogQuery{
		MainTab:     entity.KindIncome,
		CategoryTab: f.zeta.ID.String(),
		Selected:    []uuid.UUID{haircut},
	})
	assert.True(t, view.AllSelected)
}

func TestSelection(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	visible := []uuid.UUID{a, b}
	s := NewSelection()

	s.Toggle(a)
	assert.True(t, s.Has(a))
	assert.True(t, s.SomeSelected(visible))
	assert.False(t, s.AllSelected(visible))

	s.ToggleAll(visible)
	assert.True(t, s.AllSelected(visible))
	assert.Equal(t, 2, s.Len())

	s.ToggleAll(visible)
	assert.Equal(t, 0, s.Len())

	s.Toggle(c)
	s.ToggleAll(visible)
	assert.False(t, s.Has(c), "select all replaces the set with visible rows")

	s.Toggle(a)
	assert.False(t, s.Has(a))

	s.Clear()
	assert.False(t, s.SomeSelected(visible))
	assert.False(t, s.AllSelected(nil))
}
