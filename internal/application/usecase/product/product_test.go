package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

func TestCreateProductUseCase(t *testing.T) {
	ctx := context.Background()
	session := newSession("Joana")
	services := entity.NewCategory("Serviços", entity.KindIncome)
	categories := &fakeCategoryRepo{categories: []*entity.Category{services}}

	tests := []struct {
		name     string
		input    CreateProductInput
		wantCode string
		errCode  domainerror.ProductErrorCode
	}{
		{
			name:     "generates code when empty",
			input:    CreateProductInput{Name: "Consulta", BasePrice: "45.50", CategoryID: &services.ID, Kind: entity.KindIncome},
			wantCode: "JOA001",
		},
		{
			name:     "keeps explicit code",
			input:    CreateProductInput{Name: "Corte", Code: " CUT9 ", BasePrice: "0", Kind: entity.KindIncome},
			wantCode: "CUT9",
		},
		{
			name:    "name required",
			input:   CreateProductInput{BasePrice: "10", Kind: entity.KindIncome},
			errCode: domainerror.ErrCodeMissingProductFields,
		},
		{
			name:    "price required",
			input:   CreateProductInput{Name: "Corte", Kind: entity.KindIncome},
			errCode: domainerror.ErrCodeMissingProductFields,
		},
		{
			name:    "price must be numeric",
			input:   CreateProductInput{Name: "Corte", BasePrice: "abc", Kind: entity.KindIncome},
			errCode: domainerror.ErrCodeInvalidProductPrice,
		},
		{
			name:    "price must not be negative",
			input:   CreateProductInput{Name: "Corte", BasePrice: "-1", Kind: entity.KindIncome},
			errCode: domainerror.ErrCodeInvalidProductPrice,
		},
		{
			name:    "category kind must match",
			input:   CreateProductInput{Name: "Renda", BasePrice: "500", CategoryID: &services.ID, Kind: entity.KindExpense},
			errCode: domainerror.ErrCodeProductCategoryMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProductRepo{}
			uc := NewCreateProductUseCase(repo, categories, NewCodeGenerator(repo, &fakeLocker{}))

			out, err := uc.Execute(ctx, session, tt.input)

			if tt.errCode != "" {
				var productErr *domainerror.ProductError
				require.ErrorAs(t, err, &productErr)
				assert.Equal(t, tt.errCode, productErr.Code)
				assert.Empty(t, repo.products)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, out.Product.CodeValue())
			assert.True(t, out.Product.Active)
			assert.Equal(t, session.OperatorID, *out.Product.OperatorID)
		})
	}
}

func TestCreateProductUseCase_DuplicateExplicitCode(t *testing.T) {
	ctx := context.Background()
	session := newSession("Joana")
	repo := &fakeProductRepo{}
	seed(repo, session, "Existing", strPtr("JOA001"), true)
	uc := NewCreateProductUseCase(repo, &fakeCategoryRepo{}, NewCodeGenerator(repo, &fakeLocker{}))

	_, err := uc.Execute(ctx, session, CreateProductInput{Name: "Other", Code: "JOA001", BasePrice: "1", Kind: entity.KindIncome})

	var productErr *domainerror.ProductError
	require.ErrorAs(t, err, &productErr)
	assert.Equal(t, domainerror.ErrCodeProductCodeExists, productErr.Code)
}

func TestCreateInlineProductUseCase(t *testing.T) {
	ctx := context.Background()
	session := newSession("Joana")
	repo := &fakeProductRepo{}
	seed(repo, session, "Café", strPtr("JOA001"), true)
	uc := NewCreateInlineProductUseCase(repo, NewCodeGenerator(repo, &fakeLocker{}))

	out, err := uc.Execute(ctx, session, CreateInlineProductInput{Name: "  Bolo ", Price: "2.5", Kind: entity.KindIncome})
	require.NoError(t, err)
	assert.Equal(t, "Bolo", out.Product.Name)
	assert.Equal(t, "JOA002", out.Product.CodeValue())
	assert.Nil(t, out.Product.CategoryID)

	_, err = uc.Execute(ctx, session, CreateInlineProductInput{Name: "CAFÉ", Price: "1", Kind: entity.KindIncome})
	var productErr *domainerror.ProductError
	require.ErrorAs(t, err, &productErr)
	assert.Equal(t, domainerror.ErrCodeProductNameExists, productErr.Code)

	_, err = uc.Execute(ctx, session, CreateInlineProductInput{Name: "Água", Price: "0", Kind: entity.KindIncome})
	require.ErrorAs(t, err, &productErr)
	assert.Equal(t, domainerror.ErrCodeInvalidProductPrice, productErr.Code)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	ctx := context.Background()
	session := newSession("Joana")
	repo := &fakeProductRepo{}
	generator := NewCodeGenerator(repo, &fakeLocker{})
	first := seed(repo, session, "A", strPtr("JOA001"), true)
	second := seed(repo, session, "B", strPtr("JOA002"), true)
	seed(repo, session, "C", strPtr("JOA003"), true)

	deleted, err := NewSoftDeleteProductsUseCase(repo).Execute(ctx, session, []uuid.UUID{second.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.DeletedCount)
	assert.False(t, repo.byName("B").Active)
	assert.Nil(t, repo.byName("B").Code)

	restored, err := NewRestoreProductUseCase(repo, generator).Execute(ctx, session, second.ID)
	require.NoError(t, err)
	assert.True(t, restored.Product.Active)
	assert.Equal(t, "JOA004", restored.Product.CodeValue())

	again, err := NewRestoreProductUseCase(repo, generator).Execute(ctx, session, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "JOA001", again.Product.CodeValue())

	_, err = NewSoftDeleteProductsUseCase(repo).Execute(ctx, session, nil)
	var productErr *domainerror.ProductError
	require.ErrorAs(t, err, &productErr)
	assert.Equal(t, domainerror.ErrCodeNoProductsSelected, productErr.Code)
}

func TestPermanentDeleteProductsUseCase(t *testing.T) {
	ctx := context.Background()
	session := newSession("Joana")
	repo := &fakeProductRepo{}
	active := seed(repo, session, "Active", strPtr("JOA001"), true)
	inactive := seed(repo, session, "Inactive", nil, false)
	seed(repo, session, "Inactive 2", nil, false)
	uc := NewPermanentDeleteProductsUseCase(repo)

	out, err := uc.Execute(ctx, session, PermanentDeleteProductsInput{IDs: []uuid.UUID{active.ID, inactive.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.DeletedCount)
	assert.NotNil(t, repo.byName("Active"))

	out, err = uc.Execute(ctx, session, PermanentDeleteProductsInput{All: true, Kind: entity.KindIncome})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.DeletedCount)
	assert.Len(t, repo.products, 1)
}

func TestUpdateProductUseCase(t *testing.T) {
	ctx := context.Background()
	session := newSession("Joana")
	repo := &fakeProductRepo{}
	p := seed(repo, session, "Old", strPtr("JOA001"), true)
	uc := NewUpdateProductUseCase(repo, &fakeCategoryRepo{}, NewCodeGenerator(repo, &fakeLocker{}))

	out, err := uc.Execute(ctx, session, UpdateProductInput{
		ID:          p.ID,
		Name:        "New",
		Description: "  ",
		BasePrice:   "12.00",
		Kind:        entity.KindExpense,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", out.Product.Name)
	assert.Equal(t, entity.KindExpense, out.Product.Kind)
	assert.Nil(t, out.Product.Description)
	assert.Equal(t, "JOA002", out.Product.CodeValue())

	_, err = uc.Execute(ctx, newSession("Other"), UpdateProductInput{ID: p.ID, Name: "X", BasePrice: "1", Kind: entity.KindIncome})
	var productErr *domainerror.ProductError
	require.ErrorAs(t, err, &productErr)
	assert.Equal(t, domainerror.ErrCodeProductNotFound, productErr.Code)
}

func TestUpdateProductUseCase_DeletedProductKeepsNoCode(t *testing.T) {
	ctx := context.Background()
	session := newSession("Joana")
	repo := &fakeProductRepo{}
	gone := seed(repo, session, "Gone", nil, false)
	uc := NewUpdateProductUseCase(repo, &fakeCategoryRepo{}, NewCodeGenerator(repo, &fakeLocker{}))

	_, err := uc.Execute(ctx, session, UpdateProductInput{
		ID:        gone.ID,
		Name:      "Back",
		BasePrice: "3.00",
		Kind:      entity.KindIncome,
	})

	var productErr *domainerror.ProductError
	require.ErrorAs(t, err, &productErr)
	assert.Equal(t, domainerror.ErrCodeProductNotFound, productErr.Code)
	assert.ErrorIs(t, err, domainerror.ErrProductInactive)

	stored := repo.byName("Gone")
	require.NotNil(t, stored)
	assert.False(t, stored.Active)
	assert.Nil(t, stored.Code)
}

func TestPickProductsUseCase(t *testing.T) {
	ctx := context.Background()
	session := newSession("Joana")
	repo := &fakeProductRepo{}
	for _, name := range []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "b10", "b11", "b12"} {
		seed(repo, session, name, nil, true)
	}
	uc := NewPickProductsUseCase(repo)

	page := uc.Execute(ctx, session, PickProductsInput{Kind: entity.KindIncome})
	assert.Len(t, page.Products, DefaultPickerLimit)
	assert.True(t, page.HasMore)

	page = uc.Execute(ctx, session, PickProductsInput{Kind: entity.KindIncome, Offset: 10})
	assert.Len(t, page.Products, 2)
	assert.False(t, page.HasMore)

	page = uc.Execute(ctx, session, PickProductsInput{Kind: entity.KindIncome, Search: "B1"})
	assert.Len(t, page.Products, 3)
}
