package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshed/gearshed/internal/errs"
)

func TestNewEquipmentValidate(t *testing.T) {
	n := NewEquipment{
		Name:          "QSC K12.2",
		Description:   "2000W powered speaker",
		EquipmentType: TypeSpeaker,
	}

	require.NoError(t, n.Validate())
	assert.Equal(t, StatusAvailable, n.AvailabilityStatus, "empty status should default to available")
}

func TestNewEquipmentValidateRejectsBadValues(t *testing.T) {
	weight := -4.5
	price := decimal.NewFromInt(-10)

	tests := []struct {
		name string
		n    NewEquipment
	}{
		{
			name: "empty name",
			n:    NewEquipment{Name: "  ", Description: "d", EquipmentType: TypeSpeaker},
		},
		{
			name: "empty description",
			n:    NewEquipment{Name: "n", Description: "", EquipmentType: TypeSpeaker},
		},
		{
			name: "unknown type",
			n:    NewEquipment{Name: "n", Description: "d", EquipmentType: "drone"},
		},
		{
			name: "unknown status",
			n:    NewEquipment{Name: "n", Description: "d", EquipmentType: TypeLight, AvailabilityStatus: "lost"},
		},
		{
			name: "non-positive weight",
			n:    NewEquipment{Name: "n", Description: "d", EquipmentType: TypeLight, Weight: &weight},
		},
		{
			name: "non-positive price",
			n: NewEquipment{
				Name: "n", Description: "d", EquipmentType: TypeLight,
				RentalPricePerDay: decimal.NullDecimal{Decimal: price, Valid: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.n.Validate()
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.InvalidValue))
		})
	}
}

func TestEquipmentUpdateValidate(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		u := EquipmentUpdate{}
		assert.True(t, u.IsZero())
		assert.True(t, errs.IsKind(u.Validate(), errs.InvalidValue))
	})

	t.Run("single valid field", func(t *testing.T) {
		name := "Shure SM58"
		u := EquipmentUpdate{Name: &name}
		assert.False(t, u.IsZero())
		assert.NoError(t, u.Validate())
	})

	t.Run("clearing an optional field is valid", func(t *testing.T) {
		var cleared *string
		u := EquipmentUpdate{Brand: &cleared}
		assert.False(t, u.IsZero())
		assert.NoError(t, u.Validate())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		name := "   "
		u := EquipmentUpdate{Name: &name}
		assert.True(t, errs.IsKind(u.Validate(), errs.InvalidValue))
	})

	t.Run("bad enum rejected", func(t *testing.T) {
		et := EquipmentType("toaster")
		u := EquipmentUpdate{EquipmentType: &et}
		assert.True(t, errs.IsKind(u.Validate(), errs.InvalidValue))
	})
}

func TestEquipmentTypeValid(t *testing.T) {
	for _, et := range EquipmentTypes {
		assert.True(t, et.Valid(), et)
	}
	assert.False(t, EquipmentType("").Valid())
	assert.False(t, EquipmentType("Speaker").Valid(), "enum values are case sensitive")
}
