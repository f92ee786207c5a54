package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func previewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReservationHandler(nil)
	r.POST("/v1/reservations/preview", h.Preview)
	return r
}

func postPreview(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	previewRouter().ServeHTTP(w, req)
	return w
}

func TestPreviewComplete(t *testing.T) {
	w := postPreview(t, `{"room":"Quiet Pod A","date":"2025-03-10","start":"09:00","duration":"60"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("expected ok response, got %s", w.Body.String())
	}
}

func TestPreviewMissingField(t *testing.T) {
	w := postPreview(t, `{"room":"Quiet Pod A","date":"2025-03-10","start":"09:00"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing duration") {
		t.Fatalf("expected missing-field message, got %s", w.Body.String())
	}
}

func TestPreviewEmptyFieldCountsAsMissing(t *testing.T) {
	w := postPreview(t, `{"room":"","date":"2025-03-10","start":"09:00","duration":"60"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing room") {
		t.Fatalf("expected missing-field message, got %s", w.Body.String())
	}
}

func TestPreviewNullFieldCountsAsMissing(t *testing.T) {
	w := postPreview(t, `{"room":"Quiet Pod A","date":null,"start":"09:00","duration":"60"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing date") {
		t.Fatalf("expected missing-field message, got %s", w.Body.String())
	}
}

func TestPreviewMalformedBody(t *testing.T) {
	w := postPreview(t, `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
