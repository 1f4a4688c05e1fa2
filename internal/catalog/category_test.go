package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshed/gearshed/internal/errs"
)

func TestNewCategoryValidate(t *testing.T) {
	n := NewCategory{Name: "Party Package", TypicalEventSize: SizeMedium}
	require.NoError(t, n.Validate())

	n = NewCategory{Name: "", TypicalEventSize: SizeMedium}
	assert.True(t, errs.IsKind(n.Validate(), errs.InvalidValue))

	n = NewCategory{Name: "Party Package", TypicalEventSize: "massive"}
	assert.True(t, errs.IsKind(n.Validate(), errs.InvalidValue))
}

func TestCategoryUpdateValidate(t *testing.T) {
	u := CategoryUpdate{}
	assert.True(t, u.IsZero())
	assert.True(t, errs.IsKind(u.Validate(), errs.InvalidValue))

	size := SizeLarge
	u = CategoryUpdate{TypicalEventSize: &size}
	assert.NoError(t, u.Validate())

	var cleared *string
	u = CategoryUpdate{TargetAudience: &cleared}
	assert.False(t, u.IsZero())
	assert.NoError(t, u.Validate())
}
