package keystore

import (
	"errors"
	"fmt"
)

// センチネルエラー
var (
	// ErrKeyNotFound は指定インデックスの鍵が存在しない場合のエラー
	ErrKeyNotFound = errors.New("pseudonym key not found")

	// ErrInvalidKey は保存されている鍵の形式が不正な場合のエラー
	ErrInvalidKey = errors.New("invalid pseudonym key")

	// ErrValkeyUnavailable はValkeyへの接続が利用不可能な場合のエラー
	ErrValkeyUnavailable = errors.New("valkey unavailable")

	// ErrCircuitOpen はCircuit BreakerがOpen状態の場合のエラー
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrInvalidResponse は鍵管理APIからのレスポンスが不正な場合のエラー
	ErrInvalidResponse = errors.New("invalid response from key api")
)

// APIError は鍵管理APIのHTTPエラーを表す
type APIError struct {
	StatusCode int
	Message    string
	Details    *ProblemDetails
}

func (e *APIError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("key api error: %d %s - %s", e.StatusCode, e.Details.Title, e.Details.Detail)
	}
	return fmt.Sprintf("key api error: %d %s", e.StatusCode, e.Message)
}

// IsServerError はサーバーエラーかどうかを判定する
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError は接続エラーを表す
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
