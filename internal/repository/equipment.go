package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/database"
	"github.com/gearshed/gearshed/internal/errs"
)

// EquipmentRepository persists and queries equipment rows.
type EquipmentRepository struct {
	q database.Querier
}

// NewEquipmentRepository constructs an equipment repository over q.
func NewEquipmentRepository(q database.Querier) *EquipmentRepository {
	return &EquipmentRepository{q: q}
}

const equipmentColumns = `
	id, name, description, equipment_type, brand, model, power_rating,
	dimensions, weight, rental_price_per_day, availability_status,
	created_at, updated_at`

// Create inserts a new equipment item and returns the stored row,
// including the generated id and timestamps.
func (r *EquipmentRepository) Create(ctx context.Context, n catalog.NewEquipment) (*catalog.Equipment, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return database.CollectOne[catalog.Equipment](r.q.Query(ctx, `
		INSERT INTO equipment (
			name, description, equipment_type, brand, model, power_rating,
			dimensions, weight, rental_price_per_day, availability_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+equipmentColumns,
		n.Name, n.Description, n.EquipmentType, n.Brand, n.Model,
		n.PowerRating, n.Dimensions, n.Weight, n.RentalPricePerDay,
		n.AvailabilityStatus,
	))
}

// GetByID fetches one equipment item by primary key.
func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*catalog.Equipment, error) {
	item, err := database.CollectOne[catalog.Equipment](r.q.Query(ctx, `
		SELECT `+equipmentColumns+`
		FROM equipment
		WHERE id = $1`,
		id,
	))
	if errs.IsKind(err, errs.NotFound) {
		return nil, errs.Newf(errs.NotFound, "equipment with id %d not found", id)
	}
	return item, err
}

// GetAll lists the whole inventory ordered by name.
func (r *EquipmentRepository) GetAll(ctx context.Context) ([]catalog.Equipment, error) {
	return database.Collect[catalog.Equipment](r.q.Query(ctx, `
		SELECT `+equipmentColumns+`
		FROM equipment
		ORDER BY name`,
	))
}

// GetByType lists equipment of one type, ordered by name. An unknown type
// fails fast without touching the database.
func (r *EquipmentRepository) GetByType(ctx context.Context, t catalog.EquipmentType) ([]catalog.Equipment, error) {
	if !t.Valid() {
		return nil, errs.Newf(errs.InvalidValue, "invalid equipment type %q", t)
	}
	return database.Collect[catalog.Equipment](r.q.Query(ctx, `
		SELECT `+equipmentColumns+`
		FROM equipment
		WHERE equipment_type = $1
		ORDER BY name`,
		t,
	))
}

// GetAvailable lists every item currently available for rent, grouped by
// type then name.
func (r *EquipmentRepository) GetAvailable(ctx context.Context) ([]catalog.Equipment, error) {
	return database.Collect[catalog.Equipment](r.q.Query(ctx, `
		SELECT `+equipmentColumns+`
		FROM equipment
		WHERE availability_status = $1
		ORDER BY equipment_type, name`,
		catalog.StatusAvailable,
	))
}

// GetByAvailability lists equipment in one lifecycle status.
func (r *EquipmentRepository) GetByAvailability(ctx context.Context, s catalog.AvailabilityStatus) ([]catalog.Equipment, error) {
	if !s.Valid() {
		return nil, errs.Newf(errs.InvalidValue, "invalid availability status %q", s)
	}
	return database.Collect[catalog.Equipment](r.q.Query(ctx, `
		SELECT `+equipmentColumns+`
		FROM equipment
		WHERE availability_status = $1
		ORDER BY equipment_type, name`,
		s,
	))
}

// Search runs a full-text search over name and description. Results come
// back most relevant first, with name as the tiebreaker. A blank query
// matches nothing and short-circuits to an empty result.
func (r *EquipmentRepository) Search(ctx context.Context, query string) ([]catalog.Equipment, error) {
	if strings.TrimSpace(query) == "" {
		return []catalog.Equipment{}, nil
	}
	return database.Collect[catalog.Equipment](r.q.Query(ctx, `
		SELECT `+equipmentColumns+`
		FROM equipment
		WHERE to_tsvector('english', name || ' ' || description)
			@@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(
			to_tsvector('english', name || ' ' || description),
			plainto_tsquery('english', $1)
		) DESC, name`,
		query,
	))
}

// Update applies a partial update and returns the row as stored. Only
// supplied fields change; updated_at is refreshed by the table trigger.
func (r *EquipmentRepository) Update(ctx context.Context, id int64, u catalog.EquipmentUpdate) (*catalog.Equipment, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	var (
		set  []string
		args []any
	)
	assign := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if u.Name != nil {
		assign("name", *u.Name)
	}
	if u.Description != nil {
		assign("description", *u.Description)
	}
	if u.EquipmentType != nil {
		assign("equipment_type", *u.EquipmentType)
	}
	if u.Brand != nil {
		assign("brand", *u.Brand)
	}
	if u.Model != nil {
		assign("model", *u.Model)
	}
	if u.PowerRating != nil {
		assign("power_rating", *u.PowerRating)
	}
	if u.Dimensions != nil {
		assign("dimensions", *u.Dimensions)
	}
	if u.Weight != nil {
		assign("weight", *u.Weight)
	}
	if u.RentalPricePerDay != nil {
		assign("rental_price_per_day", *u.RentalPricePerDay)
	}
	if u.AvailabilityStatus != nil {
		assign("availability_status", *u.AvailabilityStatus)
	}

	args = append(args, id)
	item, err := database.CollectOne[catalog.Equipment](r.q.Query(ctx, fmt.Sprintf(`
		UPDATE equipment
		SET %s
		WHERE id = $%d
		RETURNING `+equipmentColumns,
		strings.Join(set, ", "), len(args)),
		args...,
	))
	if errs.IsKind(err, errs.NotFound) {
		return nil, errs.Newf(errs.NotFound, "equipment with id %d not found", id)
	}
	return item, err
}

// Delete removes one equipment item. Its package memberships go with it
// through the cascading foreign key.
func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.q.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.Newf(errs.NotFound, "equipment with id %d not found", id)
	}
	return nil
}
