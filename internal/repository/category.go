package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/database"
	"github.com/gearshed/gearshed/internal/errs"
)

// CategoryRepository persists and queries package categories.
type CategoryRepository struct {
	q database.Querier
}

// NewCategoryRepository constructs a category repository over q.
func NewCategoryRepository(q database.Querier) *CategoryRepository {
	return &CategoryRepository{q: q}
}

const categoryColumns = `
	id, name, description, target_audience, typical_event_size,
	created_at, updated_at`

// Create inserts a new category and returns the stored row. A name
// already in use surfaces as a DuplicateName error.
func (r *CategoryRepository) Create(ctx context.Context, n catalog.NewCategory) (*catalog.Category, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return database.CollectOne[catalog.Category](r.q.Query(ctx, `
		INSERT INTO categories (name, description, target_audience, typical_event_size)
		VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns,
		n.Name, n.Description, n.TargetAudience, n.TypicalEventSize,
	))
}

// GetByID fetches one category by primary key.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*catalog.Category, error) {
	item, err := database.CollectOne[catalog.Category](r.q.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE id = $1`,
		id,
	))
	if errs.IsKind(err, errs.NotFound) {
		return nil, errs.Newf(errs.NotFound, "category with id %d not found", id)
	}
	return item, err
}

// GetAll lists every category ordered by name.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]catalog.Category, error) {
	return database.Collect[catalog.Category](r.q.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		ORDER BY name`,
	))
}

// GetByAudience lists categories whose target audience equals audience
// exactly, case-sensitively. Categories without an audience never match.
func (r *CategoryRepository) GetByAudience(ctx context.Context, audience string) ([]catalog.Category, error) {
	return database.Collect[catalog.Category](r.q.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE target_audience = $1
		ORDER BY name`,
		audience,
	))
}

// GetByAudienceAndSize lists categories matching both filters exactly.
func (r *CategoryRepository) GetByAudienceAndSize(ctx context.Context, audience string, size catalog.EventSize) ([]catalog.Category, error) {
	if !size.Valid() {
		return nil, errs.Newf(errs.InvalidValue, "invalid typical event size %q", size)
	}
	return database.Collect[catalog.Category](r.q.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE target_audience = $1 AND typical_event_size = $2
		ORDER BY name`,
		audience, size,
	))
}

// GetByEventSize lists categories sized for one event class.
func (r *CategoryRepository) GetByEventSize(ctx context.Context, size catalog.EventSize) ([]catalog.Category, error) {
	if !size.Valid() {
		return nil, errs.Newf(errs.InvalidValue, "invalid typical event size %q", size)
	}
	return database.Collect[catalog.Category](r.q.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE typical_event_size = $1
		ORDER BY name`,
		size,
	))
}

// Search matches categories whose name or description contains the query,
// case-insensitively. A blank query matches nothing.
func (r *CategoryRepository) Search(ctx context.Context, query string) ([]catalog.Category, error) {
	if strings.TrimSpace(query) == "" {
		return []catalog.Category{}, nil
	}
	pattern := "%" + query + "%"
	return database.Collect[catalog.Category](r.q.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY name`,
		pattern,
	))
}

// GetWithEquipment fetches one category together with its ordered
// equipment list. The derived totals over that list are the service
// layer's job.
func (r *CategoryRepository) GetWithEquipment(ctx context.Context, id int64) (*catalog.Category, []catalog.PackageItem, error) {
	cat, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := NewPackageRepository(r.q).ItemsForCategory(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return cat, items, nil
}

// Update applies a partial update and returns the row as stored.
func (r *CategoryRepository) Update(ctx context.Context, id int64, u catalog.CategoryUpdate) (*catalog.Category, error) {
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
	if u.TargetAudience != nil {
		assign("target_audience", *u.TargetAudience)
	}
	if u.TypicalEventSize != nil {
		assign("typical_event_size", *u.TypicalEventSize)
	}

	args = append(args, id)
	item, err := database.CollectOne[catalog.Category](r.q.Query(ctx, fmt.Sprintf(`
		UPDATE categories
		SET %s
		WHERE id = $%d
		RETURNING `+categoryColumns,
		strings.Join(set, ", "), len(args)),
		args...,
	))
	if errs.IsKind(err, errs.NotFound) {
		return nil, errs.Newf(errs.NotFound, "category with id %d not found", id)
	}
	return item, err
}

// Delete removes one category and, through the cascade, every membership
// that referenced it. Equipment rows are never touched.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.Newf(errs.NotFound, "category with id %d not found", id)
	}
	return nil
}
