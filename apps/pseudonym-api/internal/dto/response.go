package dto

// ClassifyResponse はIdentity分類レスポンスを表す。
// PseudonymTagとKeyIndexは暗号化3GPP仮名の場合のみ設定される。
type ClassifyResponse struct {
	IdentityType string `json:"identity_type"`
	MethodHint   string `json:"method_hint"`
	EAPType      uint8  `json:"eap_type"`
	UserLen      int    `json:"user_len"`
	Realm        string `json:"realm,omitempty"`
	PseudonymTag *uint8 `json:"pseudonym_tag,omitempty"`
	KeyIndex     *uint8 `json:"key_index,omitempty"`
}

// EncryptResponse は仮名生成レスポンスを表す。
type EncryptResponse struct {
	Pseudonym string `json:"pseudonym"`
	KeyIndex  uint8  `json:"key_index"`
}

// DecryptResponse は仮名復号レスポンスを表す。
type DecryptResponse struct {
	Identity string `json:"identity"`
	KeyIndex uint8  `json:"key_index"`
}

// XlatResponse は展開式評価レスポンスを表す。
type XlatResponse struct {
	Result string `json:"result"`
}

// HealthResponse はヘルスチェックレスポンスを表す。
type HealthResponse struct {
	Status string `json:"status"`
}
