// Package countries implements the country reconciliation feature.
//
// It reconciles a persisted set of country records against two external
// sources: a country catalogue and a currency exchange-rate feed. Each
// refresh joins the catalogue with the rates by currency code, derives an
// estimated GDP per country, and upserts records by exact country name.
//
// # Components
//
//   - Service: refresh, filtered/sorted listing, name lookup, delete, status.
//   - Handler: the REST surface (/countries, /status) including the summary
//     image endpoint.
//   - Loader: registers the feature with the application.
//   - feed: source adapters for the two external feeds.
//   - sync: the reconciliation engine with batching and per-name locking.
//   - models: the persisted Country and SystemStatus types.
//
// # HTTP Endpoints
//
//   - POST   /countries/refresh : run a reconciliation pass
//   - GET    /countries         : list with region/currency filters and sorting
//   - GET    /countries/image   : serve the generated summary card
//   - GET    /countries/:name   : get one record by exact name
//   - DELETE /countries/:name   : delete one record
//   - GET    /status            : aggregate count and last refresh time
package countries
