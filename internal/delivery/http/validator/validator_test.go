package validator

import (
	"testing"

	domainerrors "its/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string  `validate:"required"`
	Load float64 `validate:"gt=0"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "Dragon-1", Load: 0.5}))

	err := v.Validate(&sample{Load: 0.5})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Name")

	assert.ErrorIs(t, v.Validate(&sample{Name: "x"}), domainerrors.ErrValidationFailed)
}
