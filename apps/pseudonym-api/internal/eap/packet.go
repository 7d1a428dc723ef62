// Package eap はEAPパケットからIdentityを取り出す。
package eap

import (
	"encoding/binary"

	eapaka "github.com/oyaguma3/go-eapaka"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
)

// EAP Type定数（RFC 3748, RFC 4186）
// EAP-AKAはgo-eapakaの定数を使う。
const (
	EAPTypeIdentity uint8 = 1
	EAPTypeSIM      uint8 = 18
)

// headerLen はEAPヘッダ（Code + Identifier + Length + Type）の長さ
const headerLen = 5

// Header はEAPパケット先頭の固定フィールド
type Header struct {
	Code       uint8
	Identifier uint8
	Length     int
	Type       uint8
}

// ParseHeader はEAPヘッダを読み取る。
// 長さフィールドがヘッダ長未満、または実データより長い場合はfalseを返す。
func ParseHeader(data []byte) (Header, bool) {
	if len(data) < headerLen {
		return Header{}, false
	}
	h := Header{
		Code:       data[0],
		Identifier: data[1],
		Length:     int(binary.BigEndian.Uint16(data[2:4])),
		Type:       data[4],
	}
	if h.Length < headerLen || h.Length > len(data) {
		return Header{}, false
	}
	return h, true
}

// ExtractIdentity はEAP-Response/IdentityパケットからIdentityを取り出す。
// Response/Identity以外、または長さフィールドが不正な場合はfalseを返す。
func ExtractIdentity(data []byte) ([]byte, bool) {
	h, ok := ParseHeader(data)
	if !ok {
		return nil, false
	}
	if h.Code != uint8(eapaka.CodeResponse) || h.Type != EAPTypeIdentity {
		return nil, false
	}
	return data[headerLen:h.Length:h.Length], true
}

// TypeForMethod はメソッドヒントに対応するEAP Type値を返す。
// 不明な場合は0を返す。
func TypeForMethod(m simid.MethodHint) uint8 {
	switch m {
	case simid.MethodHintSIM:
		return EAPTypeSIM
	case simid.MethodHintAKA:
		return uint8(eapaka.TypeAKA)
	default:
		return 0
	}
}
