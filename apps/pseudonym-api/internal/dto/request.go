// Package dto はリクエスト・レスポンスのデータ転送オブジェクトを定義する。
package dto

// ClassifyRequest はIdentity分類リクエストを表す。
type ClassifyRequest struct {
	Identity string `json:"identity" binding:"required"`
}

// EncryptRequest は仮名生成リクエストを表す。
// KeyIndexを省略した場合は設定のデフォルト鍵インデックスを使う。
type EncryptRequest struct {
	Identity string `json:"identity" binding:"required"`
	KeyIndex *uint8 `json:"key_index,omitempty" binding:"omitempty,max=15"`
}

// DecryptRequest は仮名復号リクエストを表す。
type DecryptRequest struct {
	Pseudonym string `json:"pseudonym" binding:"required"`
}

// XlatRequest は展開式評価リクエストを表す。
// Attributesの値が "0x" で始まる場合はhexとしてデコードする。
// RadiusPacketはbase64エンコードされたRADIUSパケット。
type XlatRequest struct {
	Expression   string            `json:"expression" binding:"required"`
	Attributes   map[string]string `json:"attributes,omitempty"`
	RadiusPacket []byte            `json:"radius_packet,omitempty"`
}
