// Package handler はHTTPリクエストハンドラーを提供する。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/config"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/dto"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/keystore"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/usecase"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/httputil"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/logging"
)

// TraceIDKey はコンテキストにTraceIDを格納するキー。
const TraceIDKey = "trace_id"

// PseudonymHandler は仮名APIのハンドラー。
type PseudonymHandler struct {
	useCase usecase.PseudonymUseCaseInterface
	cfg     *config.Config
	fields  *logging.CommonFields
}

// NewPseudonymHandler は新しいPseudonymHandlerを生成する。
func NewPseudonymHandler(useCase usecase.PseudonymUseCaseInterface, cfg *config.Config) *PseudonymHandler {
	return &PseudonymHandler{
		useCase: useCase,
		cfg:     cfg,
		fields:  logging.NewCommonFields(logging.NewMasker(cfg.LogMaskIMSI)),
	}
}

// HandleClassify はPOST /api/v1/identity/classify のハンドラー。
func (h *PseudonymHandler) HandleClassify(c *gin.Context) {
	ctx, traceID := h.requestContext(c)

	var req dto.ClassifyRequest
	if !h.bind(c, traceID, "IDENTITY_ERR", &req) {
		return
	}

	resp, err := h.useCase.Classify(ctx, &req)
	if err != nil {
		h.handleError(c, traceID, req.Identity, err)
		return
	}

	slog.Debug("identity classified",
		logging.WithTraceID(traceID),
		logging.WithEventID("IDENTITY_CLASSIFY"),
		h.fields.WithIdentity(req.Identity),
		slog.String(logging.FieldIdentityType, resp.IdentityType),
		slog.String(logging.FieldMethodHint, resp.MethodHint),
	)
	c.JSON(http.StatusOK, resp)
}

// HandleEncrypt はPOST /api/v1/pseudonym/encrypt のハンドラー。
func (h *PseudonymHandler) HandleEncrypt(c *gin.Context) {
	ctx, traceID := h.requestContext(c)

	var req dto.EncryptRequest
	if !h.bind(c, traceID, "PSEUDONYM_ENCRYPT_ERR", &req) {
		return
	}

	resp, err := h.useCase.Encrypt(ctx, &req)
	if err != nil {
		h.handleError(c, traceID, req.Identity, err)
		return
	}

	slog.Info("pseudonym generated",
		append(h.fields.IdentityLogFields(traceID, "PSEUDONYM_ENCRYPT", req.Identity),
			logging.WithKeyIndex(resp.KeyIndex),
			logging.WithHTTPStatus(http.StatusOK),
		)...,
	)
	c.JSON(http.StatusOK, resp)
}

// HandleDecrypt はPOST /api/v1/pseudonym/decrypt のハンドラー。
func (h *PseudonymHandler) HandleDecrypt(c *gin.Context) {
	ctx, traceID := h.requestContext(c)

	var req dto.DecryptRequest
	if !h.bind(c, traceID, "PSEUDONYM_DECRYPT_ERR", &req) {
		return
	}

	resp, err := h.useCase.Decrypt(ctx, &req)
	if err != nil {
		h.handleError(c, traceID, req.Pseudonym, err)
		return
	}

	slog.Info("pseudonym decrypted",
		append(h.fields.IdentityLogFields(traceID, "PSEUDONYM_DECRYPT", resp.Identity),
			logging.WithKeyIndex(resp.KeyIndex),
			logging.WithHTTPStatus(http.StatusOK),
		)...,
	)
	c.JSON(http.StatusOK, resp)
}

// HandleXlat はPOST /api/v1/xlat のハンドラー。
func (h *PseudonymHandler) HandleXlat(c *gin.Context) {
	ctx, traceID := h.requestContext(c)

	var req dto.XlatRequest
	if !h.bind(c, traceID, "XLAT_ERR", &req) {
		return
	}

	resp, err := h.useCase.Expand(ctx, &req)
	if err != nil {
		h.handleError(c, traceID, "", err)
		return
	}

	slog.Debug("expression expanded",
		logging.WithTraceID(traceID),
		logging.WithEventID("XLAT_OK"),
		slog.String("expression", req.Expression),
	)
	c.JSON(http.StatusOK, resp)
}

// requestContext はTraceIDを取り出し、鍵取得で引き継ぐコンテキストを返す。
func (h *PseudonymHandler) requestContext(c *gin.Context) (context.Context, string) {
	traceID := c.GetString(TraceIDKey)
	return keystore.WithTraceID(c.Request.Context(), traceID), traceID
}

// bind はリクエストボディをバインドする。失敗時は400を返してfalseを返す。
func (h *PseudonymHandler) bind(c *gin.Context, traceID, eventID string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.Warn("invalid request body",
			logging.WithTraceID(traceID),
			logging.WithEventID(eventID),
			logging.WithError(err),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return false
	}
	return true
}

// handleError はエラーレスポンスを処理する。
func (h *PseudonymHandler) handleError(c *gin.Context, traceID, identity string, err error) {
	var problemErr *usecase.ProblemError
	if errors.As(err, &problemErr) {
		slog.Log(c.Request.Context(), problemErr.LogLevel(), problemErr.Message,
			logging.WithTraceID(traceID),
			logging.WithEventID(problemErr.EventID),
			h.fields.WithIdentity(identity),
			logging.WithHTTPStatus(problemErr.Status),
			logging.WithError(err),
		)
		httputil.WriteError(c, problemErr.ToProblemDetail())
		return
	}

	// 予期しないエラー
	slog.Error("unexpected error",
		logging.WithTraceID(traceID),
		logging.WithEventID("INTERNAL_ERR"),
		h.fields.WithIdentity(identity),
		logging.WithError(err),
	)
	httputil.WriteError(c, httputil.InternalServerError("An unexpected error occurred"))
}

