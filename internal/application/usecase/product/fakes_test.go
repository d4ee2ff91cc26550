package product

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
	// collisions makes the next N writes fail with a duplicate code.
	collisions int
	writes     int
}

func (r *fakeProductRepo) codeTaken(p *entity.Product) bool {
	if p.Code == nil {
		return false
	}
	for _, other := range r.products {
		if other.ID != p.ID && other.Code != nil && *other.Code == *p.Code && sameOperator(other, p) {
			return true
		}
	}
	return false
}

func sameOperator(a, b *entity.Product) bool {
	if a.OperatorID == nil || b.OperatorID == nil {
		return false
	}
	return *a.OperatorID == *b.OperatorID
}

func (r *fakeProductRepo) write(p *entity.Product, insert bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.collisions > 0 {
		r.collisions--
		return domainerror.ErrProductCodeExists
	}
	if r.codeTaken(p) {
		return domainerror.ErrProductCodeExists
	}
	cp := *p
	if insert {
		r.products = append(r.products, &cp)
		return nil
	}
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products[i] = &cp
			return nil
		}
	}
	return domainerror.ErrProductNotFound
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.write(p, true)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.write(p, false)
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID, operatorID uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id && p.OperatorID != nil && *p.OperatorID == operatorID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domainerror.ErrProductNotFound
}

func (r *fakeProductRepo) FindByOperator(_ context.Context, operatorID uuid.UUID, active bool) ([]*entity.ProductWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ProductWithCategory
	for _, p := range r.products {
		if p.OperatorID != nil && *p.OperatorID == operatorID && p.Active == active {
			cp := *p
			out = append(out, &entity.ProductWithCategory{Product: &cp})
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindCodesByPrefix(_ context.Context, operatorID *uuid.UUID, prefix string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var codes []string
	for _, p := range r.products {
		if p.Code == nil || p.OperatorID == nil || operatorID == nil || *p.OperatorID != *operatorID {
			continue
		}
		if strings.HasPrefix(*p.Code, prefix) {
			codes = append(codes, *p.Code)
		}
	}
	return codes, nil
}

func (r *fakeProductRepo) ExistsActiveByName(_ context.Context, operatorID uuid.UUID, name string, kind entity.Kind) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Active && p.Kind == kind && p.OperatorID != nil && *p.OperatorID == operatorID && strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) SoftDelete(_ context.Context, ids []uuid.UUID, operatorID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.products {
		for _, id := range ids {
			if p.ID == id && *p.OperatorID == operatorID {
				p.Deactivate()
				n++
			}
		}
	}
	return n, nil
}

func (r *fakeProductRepo) DeleteInactive(_ context.Context, ids []uuid.UUID, operatorID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	return r.removeWhere(func(p *entity.Product) bool {
		return wanted[p.ID] && !p.Active && *p.OperatorID == operatorID
	}), nil
}

func (r *fakeProductRepo) DeleteAllInactive(_ context.Context, operatorID uuid.UUID, kind entity.Kind) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeWhere(func(p *entity.Product) bool {
		return !p.Active && p.Kind == kind && *p.OperatorID == operatorID
	}), nil
}

func (r *fakeProductRepo) removeWhere(match func(*entity.Product) bool) int64 {
	var kept []*entity.Product
	var n int64
	for _, p := range r.products {
		if match(p) {
			n++
			continue
		}
		kept = append(kept, p)
	}
	r.products = kept
	return n
}

func (r *fakeProductRepo) Pick(_ context.Context, filter adapter.ProductPickerFilter) (*adapter.ProductPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	term := strings.ToLower(filter.Search)
	for _, p := range r.products {
		if !p.Active || p.Kind != filter.Kind || *p.OperatorID != filter.OperatorID {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) && !strings.Contains(strings.ToLower(p.CodeValue()), term) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	page := &adapter.ProductPage{Products: []*entity.Product{}}
	for i := filter.Offset; i < len(matched) && i < filter.Offset+filter.Limit; i++ {
		page.Products = append(page.Products, matched[i])
	}
	page.HasMore = filter.Offset+filter.Limit < len(matched)
	return page, nil
}

func (r *fakeProductRepo) byName(name string) *entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Name == name {
			return p
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories = append(r.categories, c)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context, kind *entity.Kind) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) ExistsByNameAndKind(_ context.Context, name string, kind entity.Kind) (bool, error) {
	return false, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	return nil
}

type fakeLocker struct {
	mu    sync.Mutex
	locks []string
}

func (l *fakeLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	l.locks = append(l.locks, key)
	l.mu.Unlock()
	return func() {}, nil
}

func newSession(name string) *entity.Session {
	return &entity.Session{
		TokenID:    uuid.NewString(),
		OperatorID: uuid.New(),
		Username:   strings.ToLower(name),
		Name:       name,
		Color:      entity.OperatorColorBlue,
	}
}

func strPtr(s string) *string {
	return &s
}
