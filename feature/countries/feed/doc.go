// Package feed implements the source adapters for the two external feeds:
// the country catalogue (restcountries) and the currency exchange-rate feed
// (open.er-api). Each adapter fails as a unit with UpstreamUnavailable when
// its feed is unreachable, times out, or reports a non-success payload.
package feed
