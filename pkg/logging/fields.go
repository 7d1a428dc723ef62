package logging

import (
	"fmt"
	"log/slog"
)

// ログフィールド名の定数
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldSrcIP      = "src_ip"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
	FieldRetryCount = "retry_count"
	FieldIMSI       = "imsi"
	FieldIdentity   = "identity"

	FieldKeyIndex     = "key_index"
	FieldIdentityType = "identity_type"
	FieldMethodHint   = "method_hint"
	FieldKeySource    = "key_source"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithSrcIP はソースIPアドレスのslog.Attrを返す。
func WithSrcIP(ip string) slog.Attr {
	return slog.String(FieldSrcIP, ip)
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithHTTPStatus はHTTPステータスコードのslog.Attrを返す。
func WithHTTPStatus(status int) slog.Attr {
	return slog.Int(FieldHTTPStatus, status)
}

// WithRetryCount はリトライ回数のslog.Attrを返す。
func WithRetryCount(count int) slog.Attr {
	return slog.Int(FieldRetryCount, count)
}

// WithKeyIndex は仮名鍵インデックスのslog.Attrを返す。
func WithKeyIndex(index uint8) slog.Attr {
	return slog.Int(FieldKeyIndex, int(index))
}

// WithIdentityType はIdentity種別のslog.Attrを返す。
func WithIdentityType(t fmt.Stringer) slog.Attr {
	return slog.String(FieldIdentityType, t.String())
}

// WithMethodHint はメソッドヒントのslog.Attrを返す。
func WithMethodHint(m fmt.Stringer) slog.Attr {
	return slog.String(FieldMethodHint, m.String())
}

// WithKeySource は鍵取得元のslog.Attrを返す。
func WithKeySource(source string) slog.Attr {
	return slog.String(FieldKeySource, source)
}

// CommonFields はマスキング設定を保持するログフィールド生成器。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(false)
	}
	return &CommonFields{masker: masker}
}

// WithIMSI はマスキングされたIMSIのslog.Attrを返す。
func (cf *CommonFields) WithIMSI(imsi string) slog.Attr {
	return slog.String(FieldIMSI, cf.masker.IMSI(imsi))
}

// WithIdentity はマスキングされたIdentityのslog.Attrを返す。
func (cf *CommonFields) WithIdentity(identity string) slog.Attr {
	return slog.String(FieldIdentity, cf.masker.Identity(identity))
}

// IdentityLogFields はIdentity処理ログ用の共通フィールドを返す。
func (cf *CommonFields) IdentityLogFields(traceID, eventID, identity string) []any {
	return []any{
		WithTraceID(traceID),
		WithEventID(eventID),
		cf.WithIdentity(identity),
	}
}
