package catalog

import "github.com/shopspring/decimal"

// TypeStats aggregates equipment of one type.
type TypeStats struct {
	Total      int             `json:"total"`
	Available  int             `json:"available"`
	AvgPrice   decimal.Decimal `json:"avg_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// StatusStats aggregates equipment in one availability status.
type StatusStats struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PriceStats summarizes catalog-wide daily rental prices over items that
// have a price.
type PriceStats struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
	Avg decimal.Decimal `json:"avg"`
}

// Statistics is the read-only aggregation over the whole catalog,
// recomputed on each call. No separate storage backs it.
type Statistics struct {
	EquipmentTotal     int                              `json:"equipment_total"`
	EquipmentAvailable int                              `json:"equipment_available"`
	EquipmentTypes     int                              `json:"equipment_types"`
	CategoryTotal      int                              `json:"category_total"`
	AudienceTypes      int                              `json:"audience_types"`
	TotalAssociations  int                              `json:"total_associations"`
	ByType             map[EquipmentType]TypeStats      `json:"by_type"`
	ByStatus           map[AvailabilityStatus]StatusStats `json:"by_status"`
	Prices             PriceStats                       `json:"prices"`
}
