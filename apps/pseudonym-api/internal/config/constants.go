package config

import "time"

// 鍵インデックスの上限（4bit）
const MaxKeyIndex = 15

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
	ValkeyMinIdleConns   = 2
)

// 鍵管理API接続設定
const (
	KeyAPIRequestTimeout = 3 * time.Second
	KeyAPIRetryCount     = 1
	KeyAPIRetryWait      = 100 * time.Millisecond
)

// Circuit Breaker設定
const (
	CBName             = "key-api"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// サーバー設定
const (
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 10 * time.Second
)
