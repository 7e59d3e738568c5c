package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewRouter_RecoversPanics(t *testing.T) {
	router := NewRouter()
	router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status got %d, want 500", rr.Code)
	}
}
