package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tastemap/backend/internal/database"
	"github.com/tastemap/backend/internal/service"
)

// SetupTestDB creates a SQLite-backed test database with the catalog schema
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A temp file rather than :memory: so every pooled connection sees the
	// same database.
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := SetupTestDB(t)
	recipeHandler := NewRecipeHandler(service.NewRecipeService(db), nil)
	healthHandler := NewHealthHandler(db)

	router := gin.New()
	router.GET("/health", healthHandler.Health)
	apiGroup := router.Group("/api")
	recipeHandler.RegisterRoutes(apiGroup)

	return router, db
}

// performRequest is a helper function to make HTTP requests in tests
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}

// createTestRecipe posts a recipe and returns its assigned id
func createTestRecipe(t *testing.T, router *gin.Engine, recipe map[string]interface{}) string {
	t.Helper()

	w := performRequest(router, "POST", "/api/recipes", recipe)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create test recipe: status %d, body %s", w.Code, w.Body.String())
	}

	var created map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	id, ok := created["id"].(string)
	if !ok || id == "" {
		t.Fatalf("create response has no id: %s", w.Body.String())
	}
	return id
}
