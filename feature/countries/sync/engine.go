package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"country-exchange/core/apperr"
	"country-exchange/feature/countries/feed"
	"country-exchange/feature/countries/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogueSource supplies the full country list.
type CatalogueSource interface {
	Fetch(ctx context.Context) ([]feed.CatalogueCountry, error)
}

// RateSource supplies the currency-code to exchange-rate map.
type RateSource interface {
	Fetch(ctx context.Context) (map[string]float64, error)
}

// ArtifactGenerator regenerates the summary artifact after a run. It is
// invoked fire-and-forget; failures never reach the Run caller.
type ArtifactGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// Result reports the exact insert/update counts of one refresh run.
type Result struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// Options tunes a refresh engine. Zero values fall back to defaults.
type Options struct {
	// BatchSize caps how many entries are written per batch (default 50).
	BatchSize int
	// ArtifactTimeout bounds the detached artifact regeneration (default 30s).
	ArtifactTimeout time.Duration
	// Multiplier draws the random GDP multiplier in [1000, 2000).
	// Tests inject a fixed function to assert exact derived values.
	Multiplier func() float64
}

// Engine runs refresh passes: it fetches both feeds, joins catalogue entries
// with rates by currency code, derives the estimated GDP, and upserts records
// by country name in bounded batches.
type Engine struct {
	db        *gorm.DB
	catalogue CatalogueSource
	rates     RateSource
	artifacts ArtifactGenerator
	logger    *zap.Logger

	batchSize       int
	artifactTimeout time.Duration
	multiplier      func() float64
	locks           *nameLocks
}

// NewEngine creates a refresh engine. artifacts may be nil to disable the
// post-run summary regeneration.
func NewEngine(db *gorm.DB, catalogue CatalogueSource, rates RateSource, artifacts ArtifactGenerator, logger *zap.Logger, opts Options) *Engine {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	if opts.ArtifactTimeout <= 0 {
		opts.ArtifactTimeout = 30 * time.Second
	}
	if opts.Multiplier == nil {
		opts.Multiplier = defaultMultiplier
	}

	return &Engine{
		db:              db,
		catalogue:       catalogue,
		rates:           rates,
		artifacts:       artifacts,
		logger:          logger,
		batchSize:       opts.BatchSize,
		artifactTimeout: opts.ArtifactTimeout,
		multiplier:      opts.Multiplier,
		locks:           newNameLocks(),
	}
}

// Run executes one refresh pass and returns its insert/update counts.
// If either feed fails nothing is written and the feed's UpstreamUnavailable
// error surfaces unchanged.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	runStart := time.Now().UTC()

	countries, rates, err := e.fetchSources(ctx)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for start := 0; start < len(countries); start += e.batchSize {
		end := start + e.batchSize
		if end > len(countries) {
			end = len(countries)
		}

		for _, entry := range countries[start:end] {
			inserted, err := e.upsert(ctx, entry, rates, runStart)
			if err != nil {
				return Result{}, apperr.Wrap(fmt.Errorf("upsert %q: %w", entry.Name, err))
			}
			if inserted {
				result.Inserted++
			} else {
				result.Updated++
			}
		}

		e.logger.Debug("Processed refresh batch",
			zap.Int("from", start),
			zap.Int("to", end),
		)
	}

	if err := e.updateStatus(ctx, runStart); err != nil {
		return Result{}, apperr.Wrap(err)
	}

	e.logger.Info("Refresh complete",
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
	)

	e.regenerateArtifact()

	return result, nil
}

// fetchSources invokes both feed adapters concurrently and waits for both.
func (e *Engine) fetchSources(ctx context.Context) ([]feed.CatalogueCountry, map[string]float64, error) {
	var (
		countries     []feed.CatalogueCountry
		rates         map[string]float64
		catErr, rtErr error
	)

	done := make(chan struct{}, 2)
	go func() {
		countries, catErr = e.catalogue.Fetch(ctx)
		done <- struct{}{}
	}()
	go func() {
		rates, rtErr = e.rates.Fetch(ctx)
		done <- struct{}{}
	}()
	<-done
	<-done

	if catErr != nil {
		return nil, nil, catErr
	}
	if rtErr != nil {
		return nil, nil, rtErr
	}
	return countries, rates, nil
}

// upsert looks up an existing record by exact name and overwrites it, or
// inserts a new one. The per-name lock makes the read-check-write sequence
// atomic against concurrent runs; the unique index on name backs it up.
func (e *Engine) upsert(ctx context.Context, entry feed.CatalogueCountry, rates map[string]float64, runStart time.Time) (inserted bool, err error) {
	record := e.transform(entry, rates, runStart)

	unlock := e.locks.lock(entry.Name)
	defer unlock()

	var existing models.Country
	lookupErr := e.db.WithContext(ctx).Where("name = ?", entry.Name).First(&existing).Error

	switch {
	case lookupErr == nil:
		record.ID = existing.ID
		if err := e.db.WithContext(ctx).Save(&record).Error; err != nil {
			return false, err
		}
		return false, nil

	case errors.Is(lookupErr, gorm.ErrRecordNotFound):
		if err := e.db.WithContext(ctx).Create(&record).Error; err != nil {
			return false, err
		}
		return true, nil

	default:
		return false, lookupErr
	}
}

// updateStatus recomputes the aggregate from the authoritative row count and
// upserts the singleton status row. Recounting (rather than incrementing)
// keeps the aggregate idempotent under concurrent writers.
func (e *Engine) updateStatus(ctx context.Context, runStart time.Time) error {
	var total int64
	if err := e.db.WithContext(ctx).Model(&models.Country{}).Count(&total).Error; err != nil {
		return fmt.Errorf("count countries: %w", err)
	}

	status := models.SystemStatus{
		ID:              models.StatusRowID,
		TotalCountries:  total,
		LastRefreshedAt: runStart,
	}
	if err := e.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&status).Error; err != nil {
		return fmt.Errorf("upsert system status: %w", err)
	}
	return nil
}

// regenerateArtifact kicks off summary regeneration on a detached goroutine.
// The run's caller never waits on it and never sees its errors.
func (e *Engine) regenerateArtifact() {
	if e.artifacts == nil {
		return
	}

	timeout := e.artifactTimeout
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := e.artifacts.Generate(ctx); err != nil {
			e.logger.Warn("Summary artifact generation failed", zap.Error(err))
		}
	}()
}
