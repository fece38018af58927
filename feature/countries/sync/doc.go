// Package sync implements the reconciliation engine behind POST /countries/refresh.
//
// A run fetches the country catalogue and the exchange-rate map concurrently,
// aborts as a unit if either feed fails, then walks the catalogue in bounded
// batches: each entry is joined with its first currency's rate, the estimated
// GDP is derived with a random multiplier, and the record is upserted by exact
// country name under a per-name lock. The singleton status row is recomputed
// from the authoritative row count at the end of the run, after which summary
// artifact regeneration is kicked off fire-and-forget.
package sync
