package countries

import (
	"context"
	"errors"
	"io"
	"time"

	"country-exchange/core/apperr"
	"country-exchange/core/storage"
	"country-exchange/feature/countries/feed"
	"country-exchange/feature/countries/models"
	"country-exchange/feature/countries/sync"
	"country-exchange/feature/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Filters restricts and orders List results.
type Filters struct {
	// Region restricts to an exact-match region when non-empty.
	Region string
	// Currency restricts to an exact-match currency code when non-empty.
	Currency string
	// Sort is one of the accepted sort keys; empty means DefaultSort.
	// Callers validate it at the boundary before reaching the service.
	Sort string
}

// Service implements the reconciled-country operations: refresh, query,
// delete, and aggregate status.
type Service struct {
	db        *gorm.DB
	logger    *zap.Logger
	engine    *sync.Engine
	artifacts *summary.Service
}

// NewService wires the feed adapters, refresh engine, and summary service
// around the given database and storage handles.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger, cfg feed.Config) *Service {
	catalogue := feed.NewCatalogueClient(cfg, logger)
	rates := feed.NewRateClient(cfg, logger)
	artifacts := summary.NewService(client, bucket, db, logger)
	engine := sync.NewEngine(db, catalogue, rates, artifacts, logger, sync.Options{
		BatchSize: cfg.BatchSize,
	})

	return &Service{
		db:        db,
		logger:    logger,
		engine:    engine,
		artifacts: artifacts,
	}
}

// Refresh runs one reconciliation pass and returns its counts.
func (s *Service) Refresh(ctx context.Context) (sync.Result, error) {
	return s.engine.Run(ctx)
}

// List returns the persisted set, filtered and ordered. It always returns a
// slice, empty when nothing matches.
func (s *Service) List(ctx context.Context, f Filters) ([]models.Country, error) {
	q := s.db.WithContext(ctx).Model(&models.Country{})

	if f.Region != "" {
		q = q.Where("region = ?", f.Region)
	}
	if f.Currency != "" {
		q = q.Where("currency_code = ?", f.Currency)
	}

	sortKey := f.Sort
	if sortKey == "" {
		sortKey = DefaultSort
	}
	order, ok := sortOrders[sortKey]
	if !ok {
		return nil, apperr.ValidationFailed(map[string]string{"sort": "invalid sort value: " + sortKey})
	}

	result := make([]models.Country, 0)
	if err := q.Order(order).Find(&result).Error; err != nil {
		return nil, apperr.Wrap(err)
	}
	return result, nil
}

// GetByName returns the record with the exact given name.
func (s *Service) GetByName(ctx context.Context, name string) (models.Country, error) {
	var country models.Country
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Country{}, apperr.NotFound("Country not found")
	}
	if err != nil {
		return models.Country{}, apperr.Wrap(err)
	}
	return country, nil
}

// Delete removes the record with the exact given name and recomputes the
// aggregate count. The status timestamp is left untouched.
func (s *Service) Delete(ctx context.Context, name string) error {
	country, err := s.GetByName(ctx, name)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&country).Error; err != nil {
		return apperr.Wrap(err)
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Country{}).Count(&total).Error; err != nil {
		return apperr.Wrap(err)
	}
	err = s.db.WithContext(ctx).
		Model(&models.SystemStatus{}).
		Where("id = ?", models.StatusRowID).
		Update("total_countries", total).Error
	if err != nil {
		return apperr.Wrap(err)
	}

	s.logger.Info("Deleted country", zap.String("name", name), zap.Int64("total", total))
	return nil
}

// GetStatus returns the aggregate record. When no refresh has ever completed
// the defaults (zero count, current time) are synthesized, not stored.
func (s *Service) GetStatus(ctx context.Context) (models.SystemStatus, error) {
	var status models.SystemStatus
	err := s.db.WithContext(ctx).First(&status, models.StatusRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SystemStatus{
			TotalCountries:  0,
			LastRefreshedAt: time.Now().UTC(),
		}, nil
	}
	if err != nil {
		return models.SystemStatus{}, apperr.Wrap(err)
	}
	return status, nil
}

// OpenSummary streams the generated summary artifact.
func (s *Service) OpenSummary(ctx context.Context) (io.ReadCloser, error) {
	return s.artifacts.Open(ctx)
}
