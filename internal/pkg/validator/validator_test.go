package validator_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergency-response-dashboard/internal/pkg/errors"
	"github.com/emergency-response-dashboard/internal/pkg/validator"
)

type sample struct {
	ID    string   `validate:"district_id"`
	Level *float64 `validate:"omitempty,gte=0"`
}

func TestValidate(t *testing.T) {
	negative := -1.0

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validator.Validate(&sample{ID: "7"}))
	})

	t.Run("padded id", func(t *testing.T) {
		err := validator.Validate(&sample{ID: " 7"})
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidRequest))
	})

	t.Run("negative level lists field", func(t *testing.T) {
		err := validator.Validate(&sample{ID: "7", Level: &negative})
		require.Error(t, err)

		var appErr *errors.AppError
		require.True(t, stderrors.As(err, &appErr))
		fields := appErr.Details["fields"].(map[string]interface{})
		assert.Equal(t, "gte", fields["sample.Level"])
	})
}
