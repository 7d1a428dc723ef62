package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/config"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/dto"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/handler"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/usecase"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/httputil"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *usecase.MockPseudonymUseCaseInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockUC := usecase.NewMockPseudonymUseCaseInterface(ctrl)
	cfg := &config.Config{ListenAddr: ":0", GinMode: gin.TestMode, LogMaskIMSI: true}
	return New(cfg, handler.NewPseudonymHandler(mockUC, cfg)), mockUC
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	var got string
	r.GET("/test", func(c *gin.Context) {
		got = c.GetString(handler.TraceIDKey)
		c.Status(http.StatusOK)
	})

	t.Run("header is used", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(traceIDHeader, "trace-abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got != "trace-abc" {
			t.Errorf("trace id = %q, want %q", got, "trace-abc")
		}
		if h := w.Header().Get(traceIDHeader); h != "trace-abc" {
			t.Errorf("response header = %q", h)
		}
	})

	t.Run("uuid is generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("trace id %q is not a UUID: %v", got, err)
		}
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware(), RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status code = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if ct := w.Header().Get("Content-Type"); ct != httputil.ContentType {
		t.Errorf("Content-Type = %q, want %q", ct, httputil.ContentType)
	}
}

func TestRoutes(t *testing.T) {
	srv, mockUC := newTestServer(t)

	mockUC.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(&dto.ClassifyResponse{IdentityType: "Permanent"}, nil)
	mockUC.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(&dto.EncryptResponse{}, nil)
	mockUC.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(&dto.DecryptResponse{}, nil)
	mockUC.EXPECT().Expand(gomock.Any(), gomock.Any()).Return(&dto.XlatResponse{}, nil)

	tests := []struct {
		path string
		body string
	}{
		{"/api/v1/identity/classify", `{"identity":"1440101234567890@realm"}`},
		{"/api/v1/pseudonym/encrypt", `{"identity":"1440101234567890@realm"}`},
		{"/api/v1/pseudonym/decrypt", `{"pseudonym":"7MAAAAAAAAAAAAAAAAAAAAA@realm"}`},
		{"/api/v1/xlat", `{"expression":"%{sim_id_type:&User-Name}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Status code = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
			}
		})
	}

	t.Run("/health", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		var resp dto.HealthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Status != "ok" {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/vector", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("Status code = %d, want %d", w.Code, http.StatusNotFound)
		}
		if ct := w.Header().Get("Content-Type"); ct != httputil.ContentType {
			t.Errorf("Content-Type = %q, want %q", ct, httputil.ContentType)
		}
	})
}
