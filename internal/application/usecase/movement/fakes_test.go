package movement

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/domain/valueobject"
)

type fakeMovementRepo struct {
	movements []*entity.MovementDetail
	failReads bool
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.movements = append(r.movements, &entity.MovementDetail{Movement: m})
	return nil
}

func (r *fakeMovementRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.Movement.ID == id {
			return m.Movement, nil
		}
	}
	return nil, domainerror.ErrMovementNotFound
}

func (r *fakeMovementRepo) FindByRange(_ context.Context, dateRange valueobject.DateRange, order adapter.SortOrder) ([]*entity.MovementDetail, error) {
	if r.failReads {
		return nil, errors.New("connection refused")
	}
	var out []*entity.MovementDetail
	for _, m := range r.movements {
		day := m.Movement.Date
		if !day.Before(dateRange.Start) && !day.After(dateRange.End) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == adapter.OldestFirst {
			return out[i].Movement.Date.Before(out[j].Movement.Date)
		}
		return out[i].Movement.Date.After(out[j].Movement.Date)
	})
	return out, nil
}

func (r *fakeMovementRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, m := range r.movements {
		if m.Movement.ID == id {
			r.movements = append(r.movements[:i], r.movements[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrMovementNotFound
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error { return nil }

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context, _ *entity.Kind) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) ExistsByNameAndKind(_ context.Context, _ string, _ entity.Kind) (bool, error) {
	return false, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeProductRepo struct {
	adapter.ProductRepository
	products []*entity.Product
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID, operatorID uuid.UUID) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id && p.OperatorID != nil && *p.OperatorID == operatorID {
			return p, nil
		}
	}
	return nil, domainerror.ErrProductNotFound
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }
