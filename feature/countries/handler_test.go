package countries_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"country-exchange/core/apperr"
	"country-exchange/core/database"
	"country-exchange/core/storage/mocks"
	"country-exchange/feature/countries"
	"country-exchange/feature/countries/feed"
	"country-exchange/feature/countries/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, cfg feed.Config) (*fiber.App, *mocks.Client, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	mockClient := new(mocks.Client)

	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.NewFiberHandler(zap.NewNop()),
	})
	svc := countries.NewService(db, mockClient, "test-bucket", zap.NewNop(), cfg)
	countries.NewHandler(svc).RegisterRoutes(app)

	return app, mockClient, db
}

func TestHandleRefresh(t *testing.T) {
	catalogueSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"France","capital":"Paris","region":"Europe","population":67000000,"currencies":[{"code":"EUR"}]}]`))
	}))
	defer catalogueSrv.Close()

	ratesSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","base_code":"USD","rates":{"EUR":0.9}}`))
	}))
	defer ratesSrv.Close()

	app, mockClient, db := setupTestApp(t, feed.Config{
		CountriesURL:   catalogueSrv.URL,
		RatesURL:       ratesSrv.URL,
		TimeoutSeconds: 5,
	})

	// Fire-and-forget artifact regeneration may reach storage before the
	// test ends; accept it without asserting on it.
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil).Maybe()
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Maybe()

	resp, err := app.Test(httptest.NewRequest("POST", "/countries/refresh", nil), 10000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["inserted"])
	assert.Equal(t, float64(0), body["updated"])
	assert.Equal(t, float64(1), body["total"])

	var count int64
	require.NoError(t, db.Model(&models.Country{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHandleRefresh_UpstreamDown(t *testing.T) {
	ratesSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error"}`))
	}))
	defer ratesSrv.Close()

	catalogueSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer catalogueSrv.Close()

	app, _, _ := setupTestApp(t, feed.Config{
		CountriesURL:   catalogueSrv.URL,
		RatesURL:       ratesSrv.URL,
		TimeoutSeconds: 5,
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/countries/refresh", nil), 10000)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "External data source unavailable", body["error"])
}

func TestHandleList_InvalidSort(t *testing.T) {
	app, _, _ := setupTestApp(t, feed.Config{})

	resp, err := app.Test(httptest.NewRequest("GET", "/countries/?sort=sideways", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Validation failed", body["error"])
	assert.Contains(t, body["details"].(map[string]any), "sort")
}

func TestHandleGetByName(t *testing.T) {
	app, _, db := setupTestApp(t, feed.Config{})
	seedCountries(t, db)

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/countries/France", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "France", body["name"])
		assert.Equal(t, "EUR", body["currency_code"])
	})

	t.Run("Not Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/countries/Narnia", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Country not found", body["error"])
	})

	t.Run("Percent-Encoded Multi-Word Name", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Country{
			Name:       "United States of America",
			Population: 331000000,
		}).Error)

		resp, err := app.Test(httptest.NewRequest("GET", "/countries/United%20States%20of%20America", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "United States of America", body["name"])
	})
}

func TestHandleDelete(t *testing.T) {
	app, _, db := setupTestApp(t, feed.Config{})
	seedCountries(t, db)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/countries/Japan", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/countries/Japan", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	t.Run("Percent-Encoded Multi-Word Name", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Country{
			Name:       "New Zealand",
			Population: 5100000,
		}).Error)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/countries/New%20Zealand", nil))
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)

		var count int64
		require.NoError(t, db.Model(&models.Country{}).Where("name = ?", "New Zealand").Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestHandleStatus(t *testing.T) {
	app, _, db := setupTestApp(t, feed.Config{})
	seedCountries(t, db)

	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(4), body["total_countries"])
	assert.NotEmpty(t, body["last_refreshed_at"])
}

func TestHandleImage_NotFound(t *testing.T) {
	app, mockClient, _ := setupTestApp(t, feed.Config{})

	mockClient.On("StatObject", mock.Anything, "test-bucket", "summary.png", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

	resp, err := app.Test(httptest.NewRequest("GET", "/countries/image", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
