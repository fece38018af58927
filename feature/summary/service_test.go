package summary_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"testing"
	"time"

	"country-exchange/core/apperr"
	"country-exchange/core/database"
	"country-exchange/core/storage/mocks"
	"country-exchange/feature/countries/models"
	"country-exchange/feature/summary"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func ptr(v float64) *float64 { return &v }

func TestGenerate(t *testing.T) {
	db := setupDB(t)

	// Seed records; one has no GDP and must not appear in the top list.
	require.NoError(t, db.Create(&models.Country{Name: "France", Population: 67000000, EstimatedGDP: ptr(2.5e12), LastRefreshedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.Country{Name: "Atlantis", Population: 500, LastRefreshedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.SystemStatus{ID: models.StatusRowID, TotalCountries: 2, LastRefreshedAt: time.Now()}).Error)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	var uploaded []byte
	mockClient.On("PutObject", mock.Anything, "test-bucket", summary.ObjectName, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			reader := args.Get(3).(io.Reader)
			uploaded, _ = io.ReadAll(reader)
		}).
		Return(minio.UploadInfo{Key: summary.ObjectName}, nil)

	svc := summary.NewService(mockClient, "test-bucket", db, zap.NewNop())

	key, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summary.ObjectName, key)

	// The uploaded bytes decode as a PNG with the expected dimensions.
	img, err := png.Decode(bytes.NewReader(uploaded))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	mockClient.AssertExpectations(t)
}

func TestGenerate_CreatesBucket(t *testing.T) {
	db := setupDB(t)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", summary.ObjectName, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := summary.NewService(mockClient, "test-bucket", db, zap.NewNop())

	_, err := svc.Generate(context.Background())
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestOpen_NotFound(t *testing.T) {
	db := setupDB(t)

	mockClient := new(mocks.Client)
	mockClient.On("StatObject", mock.Anything, "test-bucket", summary.ObjectName, mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})

	svc := summary.NewService(mockClient, "test-bucket", db, zap.NewNop())

	_, err := svc.Open(context.Background())
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
}
