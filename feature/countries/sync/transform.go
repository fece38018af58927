package sync

import (
	"math/rand/v2"
	"time"

	"country-exchange/feature/countries/feed"
	"country-exchange/feature/countries/models"
)

// defaultMultiplier draws uniformly from [1000, 2000). The derived GDP is an
// intentional estimate and not reproducible across runs.
func defaultMultiplier() float64 {
	return 1000 + rand.Float64()*1000
}

// transform joins one catalogue entry with the rate map and derives the
// estimated GDP:
//
//   - no currency listed (or a blank code): rate nil, GDP 0
//   - currency listed but no usable rate (missing or zero): rate nil, GDP nil
//   - otherwise: GDP = population * multiplier / rate
func (e *Engine) transform(entry feed.CatalogueCountry, rates map[string]float64, runStart time.Time) models.Country {
	record := models.Country{
		Name:            entry.Name,
		Population:      entry.Population,
		LastRefreshedAt: runStart,
	}

	if entry.Capital != "" {
		capital := entry.Capital
		record.Capital = &capital
	}
	if entry.Region != "" {
		region := entry.Region
		record.Region = &region
	}
	if entry.Flag != "" {
		flag := entry.Flag
		record.FlagURL = &flag
	}

	var code string
	if len(entry.Currencies) > 0 {
		code = entry.Currencies[0].Code
	}

	// A blank code counts as no currency, same as an empty list.
	if code == "" {
		zero := 0.0
		record.EstimatedGDP = &zero
		return record
	}
	record.CurrencyCode = &code

	rate, ok := rates[code]
	if !ok || rate == 0 {
		// Currency known but no usable rate: both rate and GDP stay nil.
		return record
	}
	record.ExchangeRate = &rate

	gdp := float64(entry.Population) * e.multiplier() / rate
	record.EstimatedGDP = &gdp

	return record
}
