package summary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"country-exchange/core/apperr"
	"country-exchange/core/storage"
	"country-exchange/feature/countries/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ObjectName is the storage key of the generated artifact.
const ObjectName = "summary.png"

// Service renders the summary card from current database state and keeps the
// stored copy in the configured bucket.
type Service struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new summary service.
func NewService(client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		db:     db,
		logger: logger,
	}
}

// Generate renders the summary card (total countries, top-5 by GDP, last
// refresh time) and uploads it, returning the object key.
func (s *Service) Generate(ctx context.Context) (string, error) {
	data, err := s.loadData(ctx)
	if err != nil {
		return "", err
	}

	img, err := render(data)
	if err != nil {
		return "", err
	}

	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, s.bucket, ObjectName,
		bytes.NewReader(img), int64(len(img)),
		minio.PutObjectOptions{ContentType: "image/png"},
	)
	if err != nil {
		return "", fmt.Errorf("upload summary image: %w", err)
	}

	s.logger.Info("Summary image uploaded",
		zap.String("bucket", s.bucket),
		zap.String("object", ObjectName),
		zap.Int64("countries", data.TotalCountries),
	)
	return ObjectName, nil
}

// Open streams the stored artifact, or NotFound if it was never generated.
func (s *Service) Open(ctx context.Context) (io.ReadCloser, error) {
	if _, err := s.client.StatObject(ctx, s.bucket, ObjectName, minio.StatObjectOptions{}); err != nil {
		code := minio.ToErrorResponse(err).Code
		if code == "NoSuchKey" || code == "NoSuchBucket" {
			return nil, apperr.NotFound("Summary image not found")
		}
		return nil, apperr.Wrap(err)
	}

	rc, err := s.client.GetObject(ctx, s.bucket, ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return rc, nil
}

// loadData gathers the displayed aggregates from the database.
func (s *Service) loadData(ctx context.Context) (Data, error) {
	var data Data

	if err := s.db.WithContext(ctx).Model(&models.Country{}).Count(&data.TotalCountries).Error; err != nil {
		return Data{}, fmt.Errorf("count countries: %w", err)
	}

	var top []models.Country
	err := s.db.WithContext(ctx).
		Where("estimated_gdp IS NOT NULL").
		Order("estimated_gdp DESC").
		Limit(5).
		Find(&top).Error
	if err != nil {
		return Data{}, fmt.Errorf("load top countries: %w", err)
	}
	for _, c := range top {
		data.Top = append(data.Top, TopCountry{Name: c.Name, EstimatedGDP: c.EstimatedGDP})
	}

	var status models.SystemStatus
	if err := s.db.WithContext(ctx).First(&status, models.StatusRowID).Error; err == nil {
		data.LastRefreshedAt = status.LastRefreshedAt
	} else {
		data.LastRefreshedAt = time.Now().UTC()
	}

	return data, nil
}

// ensureBucket creates the artifact bucket on first use.
func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return nil
}
