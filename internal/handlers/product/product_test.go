package product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopcart_backend/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Un cache chaud court-circuite le store : le payload est resservi
// octet pour octet, sans toucher MongoDB.
func TestGetAllProductsServedFromCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cache.Shared = cache.NewMemory()

	payload := []byte(`[{"id":1,"product_name":"casque","price":"199","rating":"4.5","features":["bluetooth"],"image_link":"https://example.com/casque.jpg"}]`)
	require.NoError(t, cache.Shared.Set(context.Background(), cache.CatalogKey, payload, cache.CatalogTTL))

	r := gin.New()
	r.GET("/data", GetAllProducts)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/data", nil))

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/data", nil))

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, payload, first.Body.Bytes())
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}
