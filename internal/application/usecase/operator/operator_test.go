package operator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

type memoryOperatorRepo struct {
	operators []*entity.Operator
	failReads bool
}

func (r *memoryOperatorRepo) Create(_ context.Context, o *entity.Operator) error {
	r.operators = append(r.operators, o)
	return nil
}

func (r *memoryOperatorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Operator, error) {
	for _, o := range r.operators {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domainerror.ErrOperatorNotFound
}

func (r *memoryOperatorRepo) FindByUsername(_ context.Context, username string) (*entity.Operator, error) {
	for _, o := range r.operators {
		if o.Username == username {
			return o, nil
		}
	}
	return nil, domainerror.ErrOperatorNotFound
}

func (r *memoryOperatorRepo) FindAll(_ context.Context) ([]*entity.Operator, error) {
	if r.failReads {
		return nil, errors.New("boom")
	}
	return r.operators, nil
}

func (r *memoryOperatorRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *memoryOperatorRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, o := range r.operators {
		if o.ID == id {
			r.operators = append(r.operators[:i], r.operators[i+1:]...)
		}
	}
	return nil
}

func TestCreateOperatorUseCase(t *testing.T) {
	ctx := context.Background()
	repo := &memoryOperatorRepo{}
	uc := NewCreateOperatorUseCase(repo)

	out, err := uc.Execute(ctx, CreateOperatorInput{Username: "Joana", Name: "Joana Silva", Color: entity.OperatorColorPurple})
	require.NoError(t, err)
	assert.Equal(t, "joana", out.Operator.Username)
	assert.Equal(t, "#8b5cf6", out.Operator.Color.Hex())

	tests := []struct {
		name  string
		input CreateOperatorInput
		code  domainerror.OperatorErrorCode
	}{
		{"username taken", CreateOperatorInput{Username: "JOANA", Name: "Other", Color: entity.OperatorColorBlue}, domainerror.ErrCodeOperatorUsernameExists},
		{"unknown colour", CreateOperatorInput{Username: "rui", Name: "Rui", Color: "green"}, domainerror.ErrCodeInvalidOperatorColor},
		{"missing name", CreateOperatorInput{Username: "rui", Color: entity.OperatorColorBlue}, domainerror.ErrCodeMissingOperatorFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)

			var operatorErr *domainerror.OperatorError
			require.ErrorAs(t, err, &operatorErr)
			assert.Equal(t, tt.code, operatorErr.Code)
		})
	}
}

func TestListAndDeleteOperators(t *testing.T) {
	ctx := context.Background()
	rui := entity.NewOperator("rui", "Rui", entity.OperatorColorOrange)
	repo := &memoryOperatorRepo{operators: []*entity.Operator{rui}}

	assert.Len(t, NewListOperatorsUseCase(repo).Execute(ctx).Operators, 1)

	require.NoError(t, NewDeleteOperatorUseCase(repo).Execute(ctx, rui.ID))
	err := NewDeleteOperatorUseCase(repo).Execute(ctx, rui.ID)
	var operatorErr *domainerror.OperatorError
	require.ErrorAs(t, err, &operatorErr)
	assert.Equal(t, domainerror.ErrCodeOperatorNotFound, operatorErr.Code)

	repo.failReads = true
	assert.Empty(t, NewListOperatorsUseCase(repo).Execute(ctx).Operators)
}

func TestOperatorColorHex(t *testing.T) {
	assert.Equal(t, "#3b82f6", entity.OperatorColorBlue.Hex())
	assert.Equal(t, "#f97316", entity.OperatorColorOrange.Hex())
	assert.Equal(t, entity.DefaultOperatorHex, entity.OperatorColor("").Hex())
}
