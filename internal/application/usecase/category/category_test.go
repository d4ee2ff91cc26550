package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

type memoryCategoryRepo struct {
	categories []*entity.Category
	failReads  bool
}

func (r *memoryCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories = append(r.categories, c)
	return nil
}

func (r *memoryCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *memoryCategoryRepo) FindAll(_ context.Context, kind *entity.Kind) ([]*entity.Category, error) {
	if r.failReads {
		return nil, errors.New("boom")
	}
	var out []*entity.Category
	for _, c := range r.categories {
		if kind == nil || c.Kind == *kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCategoryRepo) ExistsByNameAndKind(_ context.Context, name string, kind entity.Kind) (bool, error) {
	for _, c := range r.categories {
		if c.Kind == kind && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
		}
	}
	return nil
}

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	repo := &memoryCategoryRepo{}
	uc := NewCreateCategoryUseCase(repo)

	out, err := uc.Execute(ctx, CreateCategoryInput{Name: "  Salário ", Kind: entity.KindIncome})
	require.NoError(t, err)
	assert.Equal(t, "Salário", out.Category.Name)

	_, err = uc.Execute(ctx, CreateCategoryInput{Name: "Salário", Kind: entity.KindExpense})
	require.NoError(t, err, "same name under the other kind is allowed")

	tests := []struct {
		name  string
		input CreateCategoryInput
		code  domainerror.CategoryErrorCode
	}{
		{"duplicate ignoring case", CreateCategoryInput{Name: "SALÁRIO", Kind: entity.KindIncome}, domainerror.ErrCodeCategoryNameExists},
		{"blank name", CreateCategoryInput{Name: "   ", Kind: entity.KindIncome}, domainerror.ErrCodeMissingCategoryFields},
		{"invalid kind", CreateCategoryInput{Name: "Other", Kind: "receita"}, domainerror.ErrCodeInvalidCategoryType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)

			var categoryErr *domainerror.CategoryError
			require.ErrorAs(t, err, &categoryErr)
			assert.Equal(t, tt.code, categoryErr.Code)
		})
	}
}

func TestListAndDeleteCategories(t *testing.T) {
	ctx := context.Background()
	rent := entity.NewCategory("Renda", entity.KindExpense)
	repo := &memoryCategoryRepo{categories: []*entity.Category{rent, entity.NewCategory("Vendas", entity.KindIncome)}}

	kind := entity.KindExpense
	out := NewListCategoriesUseCase(repo).Execute(ctx, ListCategoriesInput{Kind: &kind})
	assert.Len(t, out.Categories, 1)

	require.NoError(t, NewDeleteCategoryUseCase(repo).Execute(ctx, rent.ID))
	err := NewDeleteCategoryUseCase(repo).Execute(ctx, rent.ID)
	var categoryErr *domainerror.CategoryError
	require.ErrorAs(t, err, &categoryErr)
	assert.Equal(t, domainerror.ErrCodeCategoryNotFound, categoryErr.Code)

	repo.failReads = true
	assert.Empty(t, NewListCategoriesUseCase(repo).Execute(ctx, ListCategoriesInput{}).Categories)
}
