package simid

// IdentityType はIdentityの種別を表す
type IdentityType int

const (
	IdentityTypeUnknown    IdentityType = iota // 不明
	IdentityTypePermanent                      // 永続ID（IMSI）
	IdentityTypePseudonym                      // 仮名
	IdentityTypeFastReauth                     // 高速再認証ID
)

// String は辞書上のIdentity種別名を返す
func (t IdentityType) String() string {
	switch t {
	case IdentityTypePermanent:
		return "Permanent"
	case IdentityTypePseudonym:
		return "Pseudonym"
	case IdentityTypeFastReauth:
		return "Fastauth"
	default:
		return "Unknown"
	}
}

// MethodHint はIdentityが示すEAPメソッドを表す
type MethodHint int

const (
	MethodHintUnknown MethodHint = iota // 不明
	MethodHintSIM                       // EAP-SIM
	MethodHintAKA                       // EAP-AKA
)

// String は辞書上のメソッド名を返す
func (m MethodHint) String() string {
	switch m {
	case MethodHintSIM:
		return "SIM"
	case MethodHintAKA:
		return "AKA"
	default:
		return "Unknown"
	}
}
