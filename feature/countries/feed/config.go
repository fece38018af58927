package feed

// Config holds configuration for the external data feeds and the refresh
// pipeline tuning that depends on them.
type Config struct {
	// CountriesURL is the country catalogue endpoint.
	CountriesURL string `mapstructure:"countries_url" default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	// RatesURL is the exchange-rate endpoint (USD base).
	RatesURL string `mapstructure:"rates_url" default:"https://open.er-api.com/v6/latest/USD"`
	// TimeoutSeconds bounds each feed request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// BatchSize caps how many catalogue entries are written per batch.
	BatchSize int `mapstructure:"batch_size" default:"50"`
}
