// Package catalog holds the domain types of the equipment catalog:
// equipment items, categories (rental packages), the membership junction
// between them, and the derived package/statistics views.
//
// Validation lives next to the types so repositories can fail fast with
// InvalidValue before issuing a write, rather than relying solely on the
// database CHECK constraints.
package catalog

import (
	"strings"
	"time"

	"github.com/gearshed/gearshed/internal/errs"
	"github.com/shopspring/decimal"
)

// EquipmentType enumerates the fixed set of equipment kinds.
type EquipmentType string

const (
	TypeSpeaker    EquipmentType = "speaker"
	TypeLight      EquipmentType = "light"
	TypeMicrophone EquipmentType = "microphone"
	TypeMixer      EquipmentType = "mixer"
	TypeAmplifier  EquipmentType = "amplifier"
	TypeCable      EquipmentType = "cable"
	TypeStand      EquipmentType = "stand"
	TypeCase       EquipmentType = "case"
	TypeController EquipmentType = "controller"
	TypeOther      EquipmentType = "other"
)

// EquipmentTypes lists every valid EquipmentType, in schema order.
var EquipmentTypes = []EquipmentType{
	TypeSpeaker, TypeLight, TypeMicrophone, TypeMixer, TypeAmplifier,
	TypeCable, TypeStand, TypeCase, TypeController, TypeOther,
}

// Valid reports whether t is a member of the enumeration.
func (t EquipmentType) Valid() bool {
	for _, known := range EquipmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AvailabilityStatus enumerates the rental lifecycle states of an item.
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusRented      AvailabilityStatus = "rented"
	StatusMaintenance AvailabilityStatus = "maintenance"
	StatusRetired     AvailabilityStatus = "retired"
)

// AvailabilityStatuses lists every valid AvailabilityStatus.
var AvailabilityStatuses = []AvailabilityStatus{
	StatusAvailable, StatusRented, StatusMaintenance, StatusRetired,
}

// Valid reports whether s is a member of the enumeration.
func (s AvailabilityStatus) Valid() bool {
	for _, known := range AvailabilityStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Equipment is a rentable item. Brand, model, power rating, dimensions,
// weight and price are optional; weight and price must be positive when
// present.
type Equipment struct {
	ID                 int64               `json:"id" db:"id"`
	Name               string              `json:"name" db:"name"`
	Description        string              `json:"description" db:"description"`
	EquipmentType      EquipmentType       `json:"equipment_type" db:"equipment_type"`
	Brand              *string             `json:"brand" db:"brand"`
	Model              *string             `json:"model" db:"model"`
	PowerRating        *string             `json:"power_rating" db:"power_rating"`
	Dimensions         *string             `json:"dimensions" db:"dimensions"`
	Weight             *float64            `json:"weight" db:"weight"`
	RentalPricePerDay  decimal.NullDecimal `json:"rental_price_per_day" db:"rental_price_per_day"`
	AvailabilityStatus AvailabilityStatus  `json:"availability_status" db:"availability_status"`
	CreatedAt          time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at" db:"updated_at"`
}

// NewEquipment carries the fields accepted on creation.
type NewEquipment struct {
	Name               string
	Description        string
	EquipmentType      EquipmentType
	Brand              *string
	Model              *string
	PowerRating        *string
	Dimensions         *string
	Weight             *float64
	RentalPricePerDay  decimal.NullDecimal
	AvailabilityStatus AvailabilityStatus
}

// Validate checks every creation constraint client-side. An empty
// availability status defaults to "available" here so the caller sees the
// value that will be stored.
func (n *NewEquipment) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return errs.New(errs.InvalidValue, "equipment name must not be empty")
	}
	if strings.TrimSpace(n.Description) == "" {
		return errs.New(errs.InvalidValue, "equipment description must not be empty")
	}
	if !n.EquipmentType.Valid() {
		return errs.Newf(errs.InvalidValue, "invalid equipment type %q", n.EquipmentType)
	}
	if n.AvailabilityStatus == "" {
		n.AvailabilityStatus = StatusAvailable
	}
	if !n.AvailabilityStatus.Valid() {
		return errs.Newf(errs.InvalidValue, "invalid availability status %q", n.AvailabilityStatus)
	}
	if n.Weight != nil && *n.Weight <= 0 {
		return errs.New(errs.InvalidValue, "equipment weight must be positive")
	}
	if n.RentalPricePerDay.Valid && n.RentalPricePerDay.Decimal.Sign() <= 0 {
		return errs.New(errs.InvalidValue, "rental price per day must be positive")
	}
	return nil
}

// EquipmentUpdate is the partial-update structure for equipment. Each
// field is present-or-absent: nil leaves the stored value untouched.
// Optional text fields use a double pointer so a present-but-nil inner
// value clears the column.
type EquipmentUpdate struct {
	Name               *string
	Description        *string
	EquipmentType      *EquipmentType
	Brand              **string
	Model              **string
	PowerRating        **string
	Dimensions         **string
	Weight             *float64
	RentalPricePerDay  *decimal.Decimal
	AvailabilityStatus *AvailabilityStatus
}

// IsZero reports whether no field was supplied.
func (u *EquipmentUpdate) IsZero() bool {
	return u.Name == nil && u.Description == nil && u.EquipmentType == nil &&
		u.Brand == nil && u.Model == nil && u.PowerRating == nil &&
		u.Dimensions == nil && u.Weight == nil && u.RentalPricePerDay == nil &&
		u.AvailabilityStatus == nil
}

// Validate checks all supplied fields against the creation constraints.
func (u *EquipmentUpdate) Validate() error {
	if u.IsZero() {
		return errs.New(errs.InvalidValue, "no fields supplied for update")
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return errs.New(errs.InvalidValue, "equipment name must not be empty")
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		return errs.New(errs.InvalidValue, "equipment description must not be empty")
	}
	if u.EquipmentType != nil && !u.EquipmentType.Valid() {
		return errs.Newf(errs.InvalidValue, "invalid equipment type %q", *u.EquipmentType)
	}
	if u.AvailabilityStatus != nil && !u.AvailabilityStatus.Valid() {
		return errs.Newf(errs.InvalidValue, "invalid availability status %q", *u.AvailabilityStatus)
	}
	if u.Weight != nil && *u.Weight <= 0 {
		return errs.New(errs.InvalidValue, "equipment weight must be positive")
	}
	if u.RentalPricePerDay != nil && u.RentalPricePerDay.Sign() <= 0 {
		return errs.New(errs.InvalidValue, "rental price per day must be positive")
	}
	return nil
}
