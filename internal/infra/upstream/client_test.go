//go:build unit

package upstream_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arttoy-storefront/internal/domain/catalog"
	"arttoy-storefront/internal/infra"
	"arttoy-storefront/internal/infra/upstream"
	"arttoy-storefront/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return upstream.NewClient(config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, logger)
}

func TestFetchToys(t *testing.T) {
	toyID := uuid.New()

	t.Run("full listing hits /catalog and decodes the envelope", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.RequestURI()
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{
					"id":             toyID,
					"name":           "Bearbrick 400%",
					"sku":            "BB-400",
					"availableQuota": 4,
				}},
			})
		})

		toys, err := client.FetchToys(context.Background(), catalog.ListAll())
		require.NoError(t, err)
		assert.Equal(t, "/catalog", gotPath)
		require.Len(t, toys, 1)
		assert.Equal(t, toyID, toys[0].ID)
		assert.Equal(t, 4, toys[0].AvailableQuota)
	})

	t.Run("filtered criteria carry field, text and minQuota", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.RequestURI()
			_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
		})

		minQuota := 2
		criteria, err := catalog.NewSearchCriteria("sku", "BB-400", &minQuota)
		require.NoError(t, err)

		_, err = client.FetchToys(context.Background(), criteria)
		require.NoError(t, err)
		assert.Equal(t, "/catalog/sku/BB-400?minQuota=2", gotPath)
	})
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   infra.UpstreamErrorKind
	}{
		{http.StatusUnauthorized, infra.KindUnauthenticated},
		{http.StatusForbidden, infra.KindForbidden},
		{http.StatusNotFound, infra.KindNotFound},
		{http.StatusConflict, infra.KindConflict},
		{http.StatusBadRequest, infra.KindBadRequest},
		{http.StatusUnprocessableEntity, infra.KindBadRequest},
		{http.StatusInternalServerError, infra.KindUnavailable},
		{http.StatusBadGateway, infra.KindUnavailable},
	}

	for _, tt := range tests {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "upstream said no"})
		})

		_, err := client.FetchToys(context.Background(), catalog.ListAll())
		require.Error(t, err, "status %d", tt.status)
		assert.True(t, infra.IsKind(err, tt.kind), "status %d should map to %s", tt.status, tt.kind)
		assert.Equal(t, "upstream said no", infra.MessageOf(err))
	}
}

func TestCreateOrder(t *testing.T) {
	toyID := uuid.New()
	orderID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer member-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, toyID.String(), body["item"])
		assert.Equal(t, float64(2), body["quantity"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"id":       orderID,
				"item":     map[string]any{"id": toyID, "name": "Bearbrick 400%", "sku": "BB-400"},
				"owner":    map[string]any{"id": uuid.New(), "name": "member"},
				"quantity": 2,
			},
		})
	})

	order, err := client.CreateOrder(context.Background(), "member-token", toyID, 2)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, toyID, order.ToyID)
	assert.Equal(t, 2, order.Quantity)
}

func TestLogin(t *testing.T) {
	t.Run("decodes an unenveloped token response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "opaque-token"})
		})

		token, err := client.Login(context.Background(), "test@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "opaque-token", token)
	})

	t.Run("rejected credentials map to unauthenticated", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
		})

		_, err := client.Login(context.Background(), "test@example.com", "wrong")
		assert.True(t, infra.IsKind(err, infra.KindUnauthenticated))
	})
}

func TestMe(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"role": "admin"}})
	})

	role, err := client.Me(context.Background(), "opaque-token")
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
}

func TestDeleteToyNoContent(t *testing.T) {
	toyID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/catalog/"+toyID.String(), r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteToy(context.Background(), "admin-token", toyID))
}
