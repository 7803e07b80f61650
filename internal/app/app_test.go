package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/config"
	"storefront/internal/models"
	"storefront/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "secret"
	cfg.Database.Seed = true
	return cfg
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	db := testutil.NewTestDB(t)

	require.NoError(t, prepareDatabase(cfg, db))
	// повторный сид ничего не дублирует
	require.NoError(t, prepareDatabase(cfg, db))
	assert.Equal(t, int64(3), testutil.Count(t, db, &models.Product{}))

	engine, err := SetupRouter(cfg, db)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products?filter=demo-mug", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

func TestNewIdentityProvider(t *testing.T) {
	cfg := testConfig()

	cfg.Identity.Provider = "clerk"
	p, err := newIdentityProvider(cfg)
	require.NoError(t, err)
	assert.NotNil(t, p)

	cfg.Identity.Provider = "ldap"
	_, err = newIdentityProvider(cfg)
	assert.Error(t, err)
}

func TestSetupRouter_StoreCurrency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	testutil.CreateProduct(t, db, "p-1", "Tea", 500)

	cfg := testConfig()
	cfg.Store.Currency = "JPY"
	engine, err := SetupRouter(cfg, db)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/p-1", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var product struct {
		Price struct {
			Amount   int64 `json:"amount"`
			Currency struct {
				Code     string `json:"code"`
				Exponent int    `json:"exponent"`
			} `json:"currency"`
			Scale int `json:"scale"`
		} `json:"price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, int64(500), product.Price.Amount)
	assert.Equal(t, "JPY", product.Price.Currency.Code)
	assert.Equal(t, 0, product.Price.Scale)

	cfg.Store.Currency = "NOPE"
	_, err = SetupRouter(cfg, db)
	assert.ErrorContains(t, err, "store currency")
}
