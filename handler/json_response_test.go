package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credkit/handler"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data envelope", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSON(map[string]string{"id": "1"}).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":{"id":"1"}}`, w.Body.String())
	})

	t.Run("status option", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSON("x", handler.WithJSONStatus(http.StatusAccepted)).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.Created([]int{1}).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"data":[1]}`, w.Body.String())
	})

	t.Run("error response defers", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		err := handler.Error(handler.ErrConflict).Render(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, handler.ErrConflict)
		assert.Zero(t, w.Body.Len())

		err = handler.Error(nil).Render(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, handler.ErrInternalServerError)
	})
}
