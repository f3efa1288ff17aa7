package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geotrack/geotrack-api/internal/respuesta"
)

func routerConLimiteRedis(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := gin.New()
	r.Use(LimiteSolicitudesRedis(client, rps, burst, time.Minute))
	r.GET("/api/pais", func(c *gin.Context) {
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "", nil))
	})
	return r
}

func TestLimiteRedisAgotaVentana(t *testing.T) {
	r := routerConLimiteRedis(t, 0, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, peticionDesde("10.2.0.1"))
		require.Equal(t, http.StatusOK, w.Code, "petición %d", i)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, peticionDesde("10.2.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestLimiteRedisAislaPorClave(t *testing.T) {
	r := routerConLimiteRedis(t, 0, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, peticionDesde("10.2.0.2"))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, peticionDesde("10.2.0.2"))
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, peticionDesde("10.2.0.3"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLimiteRedisSinClienteUsaMemoria(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LimiteSolicitudesRedis(nil, 0.001, 1, time.Minute))
	r.GET("/api/pais", func(c *gin.Context) {
		c.JSON(http.StatusOK, respuesta.Exitoso("OK", "", nil))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, peticionDesde("10.2.0.9"))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, peticionDesde("10.2.0.9"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
