package catalog

import (
	"strings"
	"time"

	"github.com/gearshed/gearshed/internal/errs"
)

// EventSize enumerates the typical event size a package targets.
type EventSize string

const (
	// SizeSmall covers events of roughly 10-50 people.
	SizeSmall EventSize = "small"
	// SizeMedium covers events of roughly 50-200 people.
	SizeMedium EventSize = "medium"
	// SizeLarge covers events of 200+ people.
	SizeLarge EventSize = "large"
	// SizeCustom marks packages sized case by case.
	SizeCustom EventSize = "custom"
)

// EventSizes lists every valid EventSize.
var EventSizes = []EventSize{SizeSmall, SizeMedium, SizeLarge, SizeCustom}

// Valid reports whether s is a member of the enumeration.
func (s EventSize) Valid() bool {
	for _, known := range EventSizes {
		if s == known {
			return true
		}
	}
	return false
}

// Category is a named package specification (e.g. "Party Package")
// composed of equipment memberships. Name is unique across the catalog.
type Category struct {
	ID               int64     `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Description      *string   `json:"description" db:"description"`
	TargetAudience   *string   `json:"target_audience" db:"target_audience"`
	TypicalEventSize EventSize `json:"typical_event_size" db:"typical_event_size"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// NewCategory carries the fields accepted on creation.
type NewCategory struct {
	Name             string
	Description      *string
	TargetAudience   *string
	TypicalEventSize EventSize
}

// Validate checks creation constraints client-side.
func (n *NewCategory) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return errs.New(errs.InvalidValue, "category name must not be empty")
	}
	if !n.TypicalEventSize.Valid() {
		return errs.Newf(errs.InvalidValue, "invalid typical event size %q", n.TypicalEventSize)
	}
	return nil
}

// CategoryUpdate is the partial-update structure for categories. nil
// leaves a field untouched; double-pointer text fields clear the column
// when the inner pointer is nil.
type CategoryUpdate struct {
	Name             *string
	Description      **string
	TargetAudience   **string
	TypicalEventSize *EventSize
}

// IsZero reports whether no field was supplied.
func (u *CategoryUpdate) IsZero() bool {
	return u.Name == nil && u.Description == nil &&
		u.TargetAudience == nil && u.TypicalEventSize == nil
}

// Validate checks all supplied fields.
func (u *CategoryUpdate) Validate() error {
	if u.IsZero() {
		return errs.New(errs.InvalidValue, "no fields supplied for update")
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return errs.New(errs.InvalidValue, "category name must not be empty")
	}
	if u.TypicalEventSize != nil && !u.TypicalEventSize.Valid() {
		return errs.Newf(errs.InvalidValue, "invalid typical event size %q", *u.TypicalEventSize)
	}
	return nil
}
