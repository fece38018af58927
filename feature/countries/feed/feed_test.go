package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"country-exchange/core/apperr"
	"country-exchange/feature/countries/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogueClient_Fetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Write([]byte(`[
				{"name":"Wakanda","population":1000,"currencies":[]},
				{"name":"France","capital":"Paris","region":"Europe","population":67000000,"flag":"https://example.com/fr.svg","currencies":[{"code":"EUR","name":"Euro","symbol":"€"}]}
			]`))
		}))
		defer srv.Close()

		client := feed.NewCatalogueClient(feed.Config{CountriesURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())
		countries, err := client.Fetch(context.Background())
		require.NoError(t, err)
		require.Len(t, countries, 2)

		assert.Equal(t, "Wakanda", countries[0].Name)
		assert.Empty(t, countries[0].Currencies)
		assert.Equal(t, "EUR", countries[1].Currencies[0].Code)
		assert.Equal(t, int64(67000000), countries[1].Population)
	})

	t.Run("Upstream Status Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := feed.NewCatalogueClient(feed.Config{CountriesURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())
		_, err := client.Fetch(context.Background())

		var appErr *apperr.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 503, appErr.Status)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := feed.NewCatalogueClient(feed.Config{CountriesURL: "http://127.0.0.1:1", TimeoutSeconds: 1}, zap.NewNop())
		_, err := client.Fetch(context.Background())

		var appErr *apperr.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 503, appErr.Status)
	})
}

func TestRateClient_Fetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"success","base_code":"USD","rates":{"USD":1,"EUR":0.93}}`))
		}))
		defer srv.Close()

		client := feed.NewRateClient(feed.Config{RatesURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())
		rates, err := client.Fetch(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 0.93, rates["EUR"])
		assert.Len(t, rates, 2)
	})

	t.Run("Non-Success Result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":"error"}`))
		}))
		defer srv.Close()

		client := feed.NewRateClient(feed.Config{RatesURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())
		_, err := client.Fetch(context.Background())

		var appErr *apperr.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 503, appErr.Status)
		assert.Equal(t, "External data source unavailable", appErr.Message)
	})

	t.Run("Malformed Payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		client := feed.NewRateClient(feed.Config{RatesURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())
		_, err := client.Fetch(context.Background())

		var appErr *apperr.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 503, appErr.Status)
	})
}
