// Package product contains catalog-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/domain/valueobject"
)

// MaxCodeAttempts bounds how many times a colliding code is regenerated.
const MaxCodeAttempts = 3

// CodeGenerator allocates product codes of the form PREFIX + zero-padded sequence.
type CodeGenerator struct {
	productRepo adapter.ProductRepository
	locker      adapter.CodeLocker
}

// NewCodeGenerator creates a new CodeGenerator instance.
func NewCodeGenerator(productRepo adapter.ProductRepository, locker adapter.CodeLocker) *CodeGenerator {
	return &CodeGenerator{
		productRepo: productRepo,
		locker:      locker,
	}
}

// Generate returns the next free code for the operator. Stored codes are re-queried
// on every call, inactive products included.
func (g *CodeGenerator) Generate(ctx context.Context, operator *entity.Operator) (string, error) {
	if operator == nil {
		return valueobject.DefaultProductCode, nil
	}

	prefix := valueobject.CodePrefix(operator.Name)
	codes, err := g.productRepo.FindCodesByPrefix(ctx, &operator.ID, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to fetch existing codes: %w", err)
	}

	return valueobject.NextProductCode(prefix, codes), nil
}

// Allocate generates a code and hands it to store while holding the operator+prefix lock.
// When store reports a duplicate code the code is regenerated, up to MaxCodeAttempts times.
func (g *CodeGenerator) Allocate(ctx context.Context, operator *entity.Operator, store func(code string) error) error {
	if operator != nil {
		unlock, err := g.locker.Lock(ctx, lockKey(operator))
		if err != nil {
			return fmt.Errorf("failed to acquire code lock: %w", err)
		}
		defer unlock()
	}

	for attempt := 1; attempt <= MaxCodeAttempts; attempt++ {
		code, err := g.Generate(ctx, operator)
		if err != nil {
			return err
		}

		err = store(code)
		if !errors.Is(err, domainerror.ErrProductCodeExists) {
			return err
		}
		slog.Warn("product code collision, regenerating", "code", code, "attempt", attempt)
	}

	return domainerror.NewProductError(
		domainerror.ErrCodeCodeGenerationExhausted,
		"could not allocate a unique product code",
		domainerror.ErrCodeGenerationExhausted,
	)
}

func lockKey(operator *entity.Operator) string {
	return "product-code:" + operator.ID.String() + ":" + valueobject.CodePrefix(operator.Name)
}
