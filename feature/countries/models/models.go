package models

import "time"

// Country is the reconciled record for a single country. Name is the
// business key: at most one row exists per exact name, enforced by a unique
// index so concurrent refreshes cannot create duplicates.
type Country struct {
	// ID is the surrogate primary key.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the country name as reported by the catalogue feed.
	Name string `gorm:"size:191;uniqueIndex;not null" json:"name"`

	// Capital is the capital city, when the catalogue lists one.
	Capital *string `json:"capital"`

	// Region is the geographic region, when the catalogue lists one.
	Region *string `gorm:"size:64;index" json:"region"`

	// Population is taken verbatim from the catalogue feed.
	Population int64 `gorm:"not null" json:"population"`

	// CurrencyCode is the first currency listed for the country, nil when
	// the country has no currency.
	CurrencyCode *string `gorm:"size:8;index" json:"currency_code"`

	// ExchangeRate is the rate-feed value for CurrencyCode, nil when the code
	// is absent or the feed has no usable entry for it.
	ExchangeRate *float64 `json:"exchange_rate"`

	// EstimatedGDP is derived during a refresh run and never recomputed
	// outside one. Zero when the country has no currency; nil when it has a
	// currency but no usable rate.
	EstimatedGDP *float64 `gorm:"column:estimated_gdp" json:"estimated_gdp"`

	// FlagURL points at the catalogue's flag asset.
	FlagURL *string `json:"flag_url"`

	// LastRefreshedAt is set on every insert or update during a refresh run.
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// StatusRowID is the fixed primary key of the singleton SystemStatus row.
const StatusRowID = 1

// SystemStatus is the singleton aggregate record for the dataset.
type SystemStatus struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// TotalCountries equals the current count of Country rows.
	TotalCountries int64 `json:"total_countries"`

	// LastRefreshedAt is the timestamp of the most recent completed refresh.
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// TableName pins the singular table name.
func (SystemStatus) TableName() string {
	return "system_status"
}
