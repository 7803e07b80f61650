package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"storefront/internal/auth"
	"storefront/internal/database"
	"storefront/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Полный сценарий на настоящем Postgres. Запускается только с TEST_DATABASE_URL.
func TestPostgres_ReviewFlow(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	gin.SetMode(gin.TestMode)

	db, err := database.Open("postgres", dsn, "test")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		db.Exec("DELETE FROM reviews")
		db.Exec("DELETE FROM users")
		db.Exec("DELETE FROM products")
	})

	cfg := testConfig()
	require.NoError(t, prepareDatabase(cfg, db))

	engine, err := SetupRouter(cfg, db)
	require.NoError(t, err)

	tok, err := auth.SignHS256(cfg.JWT.Secret, "user_pg", "", time.Minute)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/trpc/reviews.create",
			strings.NewReader(`{"productId":"demo-tee","text":"nice","rating":4}`))
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	var users int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", "user_pg").Count(&users).Error)
	assert.Equal(t, int64(1), users)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "user_pg").Error)
	assert.Equal(t, "user_pg", user.Name)
}
