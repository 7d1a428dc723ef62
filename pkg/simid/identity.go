// Package simid はEAP-SIM/EAP-AKAのIdentity文字列を分類する。
package simid

import (
	"bytes"
	"fmt"
)

// tagHint は先頭タグ文字が示す種別とメソッドの組
type tagHint struct {
	Type   IdentityType
	Method MethodHint
}

// tagTable は先頭タグ文字から種別・メソッドへの対応表。
// 種別とメソッドは常にこの表から同時に決まる。
var tagTable = map[byte]tagHint{
	TagPermanentAKA:     {IdentityTypePermanent, MethodHintAKA},
	TagPermanentSIM:     {IdentityTypePermanent, MethodHintSIM},
	TagPseudonymAKA:     {IdentityTypePseudonym, MethodHintAKA},
	TagPseudonymSIM:     {IdentityTypePseudonym, MethodHintSIM},
	TagFastReauthAKA:    {IdentityTypeFastReauth, MethodHintAKA},
	TagFastReauthSIM:    {IdentityTypeFastReauth, MethodHintSIM},
	Tag3GPPPseudonymAKA: {IdentityTypePseudonym, MethodHintAKA},
	Tag3GPPPseudonymSIM: {IdentityTypePseudonym, MethodHintSIM},
}

// UserLen は'@'より前のユーザー部の長さを返す。
// '@'がない場合は全体の長さを返す。
func UserLen(id []byte) int {
	if i := bytes.IndexByte(id, '@'); i >= 0 {
		return i
	}
	return len(id)
}

// SplitNAI はIdentityをユーザー部と'@'を含むドメイン部に分割する。
// 戻り値は元のスライスの部分ビューで、ユーザー部への追記はドメイン部を壊さない。
func SplitNAI(id []byte) (user, domain []byte) {
	n := UserLen(id)
	return id[:n:n], id[n:]
}

// IsNAI はIdentityにレルム（'@'）が含まれるかを返す
func IsNAI(id []byte) bool {
	return UserLen(id) != len(id)
}

// Classify はユーザー部の先頭文字から種別とメソッドヒントを判定する。
// NAI全体が渡された場合もユーザー部のみを対象にする。
func Classify(id []byte) (IdentityType, MethodHint, error) {
	user, _ := SplitNAI(id)
	if len(user) == 0 {
		return IdentityTypeUnknown, MethodHintUnknown,
			fmt.Errorf("%w: empty user portion", ErrUnrecognizedFormat)
	}

	hint, ok := tagTable[user[0]]
	if !ok {
		return IdentityTypeUnknown, MethodHintUnknown,
			fmt.Errorf("%w: unknown tag %q", ErrUnrecognizedFormat, user[0])
	}
	return hint.Type, hint.Method, nil
}

// PseudonymTag は仮名の先頭文字をbase64値（0-63）として返す
func PseudonymTag(user []byte) (uint8, error) {
	if len(user) == 0 {
		return 0, fmt.Errorf("%w: empty pseudonym", ErrUnrecognizedFormat)
	}
	v, ok := AlphabetValue(user[0])
	if !ok {
		return 0, fmt.Errorf("%w: tag %q outside base64 alphabet", ErrUnrecognizedFormat, user[0])
	}
	return v, nil
}

// PseudonymKeyIndex は暗号化3GPP仮名に埋め込まれた鍵インデックスを返す。
// 鍵インデックスはタグ6bitの直後の4bit（2文字目の上位4bit）に格納される。
func PseudonymKeyIndex(id []byte) (uint8, error) {
	user, _ := SplitNAI(id)
	if len(user) != PseudonymLen {
		return 0, fmt.Errorf("%w: 3gpp pseudonym expected %d bytes, got %d bytes",
			ErrWrongLength, PseudonymLen, len(user))
	}
	if _, err := PseudonymTag(user); err != nil {
		return 0, err
	}
	v, ok := AlphabetValue(user[1])
	if !ok {
		return 0, fmt.Errorf("%w: key index symbol %q outside base64 alphabet", ErrUnrecognizedFormat, user[1])
	}
	return v >> 2, nil
}

// TagForMethod はメソッドヒントに対応する暗号化仮名タグ値を返す
func TagForMethod(m MethodHint) (uint8, error) {
	switch m {
	case MethodHintSIM:
		return PseudonymTagSIM, nil
	case MethodHintAKA:
		return PseudonymTagAKA, nil
	default:
		return 0, ErrMissingMethodHint
	}
}

// MethodForTag は暗号化仮名タグ値に対応するメソッドヒントを返す。
// 復号可能なタグ（58, 59）以外はErrUnexpectedTagを返す。
func MethodForTag(tag uint8) (MethodHint, error) {
	switch tag {
	case PseudonymTagSIM:
		return MethodHintSIM, nil
	case PseudonymTagAKA:
		return MethodHintAKA, nil
	default:
		return MethodHintUnknown, fmt.Errorf("%w: tag value %d", ErrUnexpectedTag, tag)
	}
}

// PermanentTag はメソッドヒントに対応する永続IDの平文タグ文字を返す
func PermanentTag(m MethodHint) (byte, error) {
	switch m {
	case MethodHintSIM:
		return TagPermanentSIM, nil
	case MethodHintAKA:
		return TagPermanentAKA, nil
	default:
		return 0, ErrMissingMethodHint
	}
}
