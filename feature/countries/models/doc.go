// Package models defines the persisted types of the countries feature:
// the Country record (one row per country name) and the SystemStatus
// singleton tracking the aggregate count and last refresh time.
package models
