//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"almaaz-api/internal/handler/httperr"
	"almaaz-api/internal/handler/middleware"
	"almaaz-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return router
}

func performGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	t.Run("recorded public error is written from its meta", func(t *testing.T) {
		router := newErrorRouter()
		router.GET("/deferred", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict}
			resp.Error.Message = "Slot already taken"
			_ = c.Error(gin.Error{
				Err:  errs.New("duplicate key"),
				Type: gin.ErrorTypePublic,
				Meta: resp,
			})
		})

		w := performGet(router, "/deferred")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Slot already taken")
	})

	t.Run("written responses pass through untouched", func(t *testing.T) {
		router := newErrorRouter()
		router.GET("/aborted", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errs.New("no such row"), "Not found", nil)
		})

		w := performGet(router, "/aborted")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Not found")
	})

	t.Run("silent handler falls back to 500", func(t *testing.T) {
		router := newErrorRouter()
		router.GET("/silent", func(*gin.Context) {})

		w := performGet(router, "/silent")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})

	t.Run("panic is recovered into 500", func(t *testing.T) {
		router := newErrorRouter()
		router.GET("/panic", func(*gin.Context) {
			panic("boom")
		})

		w := performGet(router, "/panic")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
