package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) ProblemDetail {
	t.Helper()
	if got := w.Header().Get("Content-Type"); got != ContentType {
		t.Errorf("Content-Type = %q, want %q", got, ContentType)
	}
	var parsed ProblemDetail
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	return parsed
}

func TestWriteErrorWithoutRequest(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteError(c, BadRequest("identity is not an NAI"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status code = %d, want %d", w.Code, http.StatusBadRequest)
	}
	parsed := decodeProblem(t, w)
	if parsed.Detail != "identity is not an NAI" {
		t.Errorf("Detail = %q, want %q", parsed.Detail, "identity is not an NAI")
	}
	if parsed.Instance != "" {
		t.Errorf("Instance = %q, want empty", parsed.Instance)
	}
}

func TestWriteErrorSetsInstance(t *testing.T) {
	shared := NewProblemDetail(http.StatusNotFound, "Not Found", "pseudonym key not found")

	router := gin.New()
	router.POST("/api/v1/pseudonym/decrypt", func(c *gin.Context) {
		WriteError(c, shared)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pseudonym/decrypt", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Status code = %d, want %d", w.Code, http.StatusNotFound)
	}
	if parsed := decodeProblem(t, w); parsed.Instance != "/api/v1/pseudonym/decrypt" {
		t.Errorf("Instance = %q, want %q", parsed.Instance, "/api/v1/pseudonym/decrypt")
	}
	// 共有しているProblemDetailは書き換えない
	if shared.Instance != "" {
		t.Errorf("shared problem was mutated: Instance = %q", shared.Instance)
	}
}

func TestWriteErrorKeepsInstance(t *testing.T) {
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		p := InternalServerError("valkey unavailable")
		p.Instance = "urn:trace:abc"
		WriteError(c, p)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if parsed := decodeProblem(t, w); parsed.Instance != "urn:trace:abc" {
		t.Errorf("Instance = %q, want %q", parsed.Instance, "urn:trace:abc")
	}
}

func TestAbortWithErrorInMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if c.GetHeader("X-Reject") != "" {
			AbortWithError(c, BadRequest("rejected by middleware"))
			return
		}
		c.Next()
	})

	reached := false
	router.POST("/api/v1/xlat", func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"result": "SIM"})
	})

	t.Run("aborted", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/xlat", nil)
		req.Header.Set("X-Reject", "1")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status code = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if reached {
			t.Error("handler should not run after abort")
		}
		parsed := decodeProblem(t, w)
		if parsed.Detail != "rejected by middleware" || parsed.Instance != "/api/v1/xlat" {
			t.Errorf("problem = %+v", parsed)
		}
	})

	t.Run("passes through", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/xlat", nil))

		if w.Code != http.StatusOK {
			t.Errorf("Status code = %d, want %d", w.Code, http.StatusOK)
		}
		if !reached {
			t.Error("handler was not called")
		}
	})
}
