package repository

import (
	"context"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/database"
	"github.com/shopspring/decimal"
)

// StatsRepository computes the catalog-wide statistics view. Everything
// is derived at query time; nothing is cached or stored.
type StatsRepository struct {
	q database.Querier
}

// NewStatsRepository constructs a statistics repository over q.
func NewStatsRepository(q database.Querier) *StatsRepository {
	return &StatsRepository{q: q}
}

type typeStatsRow struct {
	EquipmentType catalog.EquipmentType `db:"equipment_type"`
	Total         int                   `db:"total"`
	Available     int                   `db:"available"`
	AvgPrice      decimal.NullDecimal   `db:"avg_price"`
	TotalPrice    decimal.NullDecimal   `db:"total_price"`
}

type statusStatsRow struct {
	AvailabilityStatus catalog.AvailabilityStatus `db:"availability_status"`
	Count              int                        `db:"count"`
}

type priceStatsRow struct {
	Min decimal.NullDecimal `db:"min"`
	Max decimal.NullDecimal `db:"max"`
	Avg decimal.NullDecimal `db:"avg"`
}

// Statistics aggregates the whole catalog in one pass: overall counts,
// per-type and per-status breakdowns, and the price range over priced
// items. On an empty catalog every count is zero and the maps are empty.
func (r *StatsRepository) Statistics(ctx context.Context) (*catalog.Statistics, error) {
	stats := &catalog.Statistics{
		ByType:   make(map[catalog.EquipmentType]catalog.TypeStats),
		ByStatus: make(map[catalog.AvailabilityStatus]catalog.StatusStats),
	}

	err := r.q.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE availability_status = 'available'),
			count(DISTINCT equipment_type),
			(SELECT count(*) FROM categories),
			(SELECT count(DISTINCT target_audience)
			 FROM categories WHERE target_audience IS NOT NULL),
			(SELECT count(*) FROM equipment_categories)
		FROM equipment`,
	).Scan(
		&stats.EquipmentTotal, &stats.EquipmentAvailable, &stats.EquipmentTypes,
		&stats.CategoryTotal, &stats.AudienceTypes, &stats.TotalAssociations,
	)
	if err != nil {
		return nil, err
	}

	byType, err := database.Collect[typeStatsRow](r.q.Query(ctx, `
		SELECT
			equipment_type,
			count(*) AS total,
			count(*) FILTER (WHERE availability_status = 'available') AS available,
			avg(rental_price_per_day) AS avg_price,
			sum(rental_price_per_day) AS total_price
		FROM equipment
		GROUP BY equipment_type`,
	))
	if err != nil {
		return nil, err
	}
	for _, row := range byType {
		stats.ByType[row.EquipmentType] = catalog.TypeStats{
			Total:      row.Total,
			Available:  row.Available,
			AvgPrice:   row.AvgPrice.Decimal,
			TotalPrice: row.TotalPrice.Decimal,
		}
	}

	byStatus, err := database.Collect[statusStatsRow](r.q.Query(ctx, `
		SELECT availability_status, count(*) AS count
		FROM equipment
		GROUP BY availability_status`,
	))
	if err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		s := catalog.StatusStats{Count: row.Count}
		if stats.EquipmentTotal > 0 {
			s.Percentage = float64(row.Count) / float64(stats.EquipmentTotal) * 100
		}
		stats.ByStatus[row.AvailabilityStatus] = s
	}

	prices, err := database.CollectOne[priceStatsRow](r.q.Query(ctx, `
		SELECT
			min(rental_price_per_day) AS min,
			max(rental_price_per_day) AS max,
			avg(rental_price_per_day) AS avg
		FROM equipment
		WHERE rental_price_per_day IS NOT NULL`,
	))
	if err != nil {
		return nil, err
	}
	stats.Prices = catalog.PriceStats{
		Min: prices.Min.Decimal,
		Max: prices.Max.Decimal,
		Avg: prices.Avg.Decimal,
	}

	return stats, nil
}
