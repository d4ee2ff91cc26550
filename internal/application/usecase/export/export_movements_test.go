package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/domain/valueobject"
)

type stubMovementRepo struct {
	adapter.MovementRepository
	movements []*entity.MovementDetail
	order     adapter.SortOrder
	err       error
}

func (r *stubMovementRepo) FindByRange(_ context.Context, _ valueobject.DateRange, order adapter.SortOrder) ([]*entity.MovementDetail, error) {
	r.order = order
	return r.movements, r.err
}

type stubRenderer struct {
	report *adapter.MovementReport
	err    error
}

func (r *stubRenderer) Render(report *adapter.MovementReport) ([]byte, error) {
	r.report = report
	return []byte("xlsx"), r.err
}

func (r *stubRenderer) Filename(dateRange valueobject.DateRange) string {
	return dateRange.Start.Format("02-01-2006") + ".xlsx"
}

func movementOn(kind entity.Kind, amount int64) *entity.MovementDetail {
	return &entity.MovementDetail{
		Movement: entity.NewMovement(kind, decimal.NewFromInt(amount), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), nil, nil, nil, nil),
	}
}

func TestExportMovementsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("renders period oldest first with totals", func(t *testing.T) {
		repo := &stubMovementRepo{movements: []*entity.MovementDetail{
			movementOn(entity.KindIncome, 100),
			movementOn(entity.KindExpense, 40),
		}}
		renderer := &stubRenderer{}

		out, err := NewExportMovementsUseCase(repo, renderer).Execute(ctx, ExportMovementsInput{Start: "2024-03-01", End: "2024-03-31"})
		require.NoError(t, err)
		assert.Equal(t, adapter.OldestFirst, repo.order)
		assert.Equal(t, "01-03-2024.xlsx", out.Filename)
		assert.Equal(t, 2, out.Rows)
		assert.Equal(t, "60", renderer.report.Totals.Balance.String())
	})

	tests := []struct {
		name  string
		input ExportMovementsInput
		repo  *stubMovementRepo
		code  domainerror.ExportErrorCode
	}{
		{"empty period", ExportMovementsInput{Start: "2024-03-01", End: "2024-03-31"}, &stubMovementRepo{}, domainerror.ErrCodeNothingToExport},
		{"missing end", ExportMovementsInput{Start: "2024-03-01"}, &stubMovementRepo{}, domainerror.ErrCodeInvalidExportRange},
		{"reversed range", ExportMovementsInput{Start: "2024-03-31", End: "2024-03-01"}, &stubMovementRepo{}, domainerror.ErrCodeInvalidExportRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &stubRenderer{}
			_, err := NewExportMovementsUseCase(tt.repo, renderer).Execute(ctx, tt.input)

			var exportErr *domainerror.ExportError
			require.ErrorAs(t, err, &exportErr)
			assert.Equal(t, tt.code, exportErr.Code)
			assert.Nil(t, renderer.report)
		})
	}

	t.Run("render failure", func(t *testing.T) {
		repo := &stubMovementRepo{movements: []*entity.MovementDetail{movementOn(entity.KindIncome, 1)}}
		_, err := NewExportMovementsUseCase(repo, &stubRenderer{err: errors.New("disk full")}).Execute(ctx, ExportMovementsInput{Start: "2024-03-01", End: "2024-03-01"})

		assert.ErrorIs(t, err, domainerror.ErrExportRenderFailed)
	})

	t.Run("fetch failure is reported", func(t *testing.T) {
		repo := &stubMovementRepo{err: errors.New("timeout")}
		_, err := NewExportMovementsUseCase(repo, &stubRenderer{}).Execute(ctx, ExportMovementsInput{Start: "2024-03-01", End: "2024-03-01"})

		assert.Error(t, err)
	})
}

