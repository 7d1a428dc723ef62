package simid

// Identity種別タグ（ユーザー部の先頭文字）
const (
	TagPermanentAKA  = '0' // EAP-AKA永続ID
	TagPermanentSIM  = '1' // EAP-SIM永続ID
	TagPseudonymAKA  = '2' // EAP-AKA仮名
	TagPseudonymSIM  = '3' // EAP-SIM仮名
	TagFastReauthAKA = '4' // EAP-AKA高速再認証ID
	TagFastReauthSIM = '5' // EAP-SIM高速再認証ID
)

// 暗号化3GPP仮名の先頭文字
// 先頭6bitのタグ値をbase64アルファベットで表した文字になる。
const (
	Tag3GPPPseudonymAKA = '6' // base64値58
	Tag3GPPPseudonymSIM = '7' // base64値59
)

// 暗号化3GPP仮名のタグ値（6bit）
const (
	PseudonymTagAKA uint8 = 58
	PseudonymTagSIM uint8 = 59
)

// 3GPP仮名の固定長パラメータ
const (
	// PseudonymLen は暗号化3GPP仮名のユーザー部の長さ。
	// タグ6bit + 鍵インデックス4bit + 暗号ブロック128bit = 138bit = 23文字
	PseudonymLen = 23

	// IMSIMaxLen は仮名に格納できるIMSI桁数の上限。
	// 圧縮IMSI領域64bit（16ニブル）に収まる桁数。
	IMSIMaxLen = 16

	// KeyLen は仮名暗号鍵の長さ（AES-128）
	KeyLen = 16

	// KeyIndexMax は鍵インデックスの最大値（4bit）
	KeyIndexMax = 15
)
