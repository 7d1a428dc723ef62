package keystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/config"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/logging"
	"github.com/sony/gobreaker"
)

// HTTPヘッダ名
const (
	HeaderTraceID = "X-Trace-ID"
	HeaderAccept  = "Accept"
)

// ContentTypeJSON はJSONのContent-Type
const ContentTypeJSON = "application/json"

// keyResponse は鍵管理APIのレスポンス
type keyResponse struct {
	Index int    `json:"index"`
	Key   string `json:"key"` // Hex文字列
}

// ProblemDetails はRFC 7807エラーレスポンスを表す
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// RemoteKeyring は外部の鍵管理APIから鍵を取得するKeyring。
// 連続失敗時はCircuit Breakerで呼び出しを遮断する。
type RemoteKeyring struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
}

// NewRemoteKeyring は新しいRemoteKeyringを生成する。
func NewRemoteKeyring(cfg *config.Config) *RemoteKeyring {
	httpClient := resty.New().
		SetTimeout(config.KeyAPIRequestTimeout).
		SetRetryCount(config.KeyAPIRetryCount).
		SetRetryWaitTime(config.KeyAPIRetryWait).
		SetHeader(HeaderAccept, ContentTypeJSON)

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					logging.WithEventID("CB_OPEN"),
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					logging.WithEventID("CB_HALF_OPEN"),
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					logging.WithEventID("CB_CLOSE"),
					"cb_name", name,
				)
			}
		},
	}

	return &RemoteKeyring{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(cfg.KeyAPIURL, "/"),
	}
}

// Key はKeyringインターフェースを実装する。
func (k *RemoteKeyring) Key(ctx context.Context, index uint8) ([]byte, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}

	start := time.Now()

	result, err := k.cb.Execute(func() (any, error) {
		req := k.httpClient.R().SetContext(ctx)
		if traceID, ok := TraceIDFrom(ctx); ok {
			req.SetHeader(HeaderTraceID, traceID)
		}
		resp, err := req.Get(k.baseURL + "/api/v1/keys/" + strconv.Itoa(int(index)))
		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		latencyMs := time.Since(start).Milliseconds()
		statusCode := resp.StatusCode()

		// CB失敗判定対象: 5xx（501除く）
		if statusCode >= 500 && statusCode != http.StatusNotImplemented {
			apiErr := parseAPIError(statusCode, resp.Body())
			slog.Error("key api error",
				logging.WithEventID("KEY_API_ERR"),
				logging.WithError(apiErr),
				logging.WithHTTPStatus(statusCode),
				logging.WithLatency(latencyMs),
				logging.WithRetryCount(resp.Request.Attempt-1),
			)
			return nil, apiErr
		}

		// CB失敗判定対象外のエラー: 4xx, 501
		if statusCode != http.StatusOK {
			apiErr := parseAPIError(statusCode, resp.Body())
			slog.Warn("key api error",
				logging.WithEventID("KEY_API_ERR"),
				logging.WithError(apiErr),
				logging.WithHTTPStatus(statusCode),
				logging.WithLatency(latencyMs),
			)
			return apiErr, nil
		}

		slog.Debug("key api success",
			logging.WithKeyIndex(index),
			logging.WithLatency(latencyMs),
		)
		return resp.Body(), nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}
		return nil, err
	}

	if apiErr, ok := result.(*APIError); ok {
		if apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: index %d: %w", ErrKeyNotFound, index, apiErr)
		}
		return nil, apiErr
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, ErrInvalidResponse
	}
	return parseKeyResponse(index, body)
}

// parseKeyResponse はJSONレスポンスから鍵を取り出す。
func parseKeyResponse(index uint8, body []byte) ([]byte, error) {
	var raw keyResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	if raw.Index != int(index) {
		return nil, fmt.Errorf("%w: index mismatch: requested %d, got %d", ErrInvalidResponse, index, raw.Index)
	}
	key, err := DecodeKey(raw.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return key, nil
}

// parseAPIError はHTTPエラーレスポンスをAPIErrorに変換する。
func parseAPIError(statusCode int, body []byte) *APIError {
	var details ProblemDetails
	if err := json.Unmarshal(body, &details); err == nil && details.Title != "" {
		return &APIError{
			StatusCode: statusCode,
			Message:    details.Title,
			Details:    &details,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    string(body),
	}
}

// traceIDKey はコンテキストからTrace IDを取得するためのキー型
type traceIDKey struct{}

// WithTraceID はコンテキストにTrace IDを設定する。
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFrom はコンテキストからTrace IDを取得する。
func TraceIDFrom(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKey{}).(string)
	return traceID, ok && traceID != ""
}
