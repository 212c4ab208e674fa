package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSHandler(t *testing.T) {
	h := NewOSHandler("test")
	h.hostname = func() (string, error) { return "planet-pod-1", nil }

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/os", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"os":"planet-pod-1","env":"test"}`, w.Body.String())
}

func TestOSHandlerHostnameFailure(t *testing.T) {
	h := NewOSHandler("production")
	h.hostname = func() (string, error) { return "", errors.New("uname failed") }

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/os", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"os":"","env":"production"}`, w.Body.String())
}

func TestProbes(t *testing.T) {
	for _, p := range []Probe{Live, Ready} {
		w := httptest.NewRecorder()
		p.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+string(p), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"`+string(p)+`"}`, w.Body.String())
	}
}
