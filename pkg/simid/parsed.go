package simid

// ParsedIdentity はパース済みのIdentity情報を保持する
type ParsedIdentity struct {
	Type   IdentityType // Identity種別
	Method MethodHint   // メソッドヒント
	User   string       // @より前のユーザー部
	Realm  string       // @以降の部分（@を含まない）
	Raw    string       // 元のIdentity文字列
	HasNAI bool         // @を含むかどうか
}

// Parse はIdentity文字列を解析してParsedIdentityを返す
func Parse(identity string) (*ParsedIdentity, error) {
	raw := []byte(identity)
	t, m, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	user, domain := SplitNAI(raw)
	p := &ParsedIdentity{
		Type:   t,
		Method: m,
		User:   string(user),
		Raw:    identity,
		HasNAI: len(domain) > 0,
	}
	if p.HasNAI {
		p.Realm = string(domain[1:])
	}
	return p, nil
}

// IsPermanent は永続IDかどうかを判定する
func (p *ParsedIdentity) IsPermanent() bool {
	return p.Type == IdentityTypePermanent
}

// Is3GPPPseudonym は固定長の暗号化3GPP仮名かどうかを判定する
func (p *ParsedIdentity) Is3GPPPseudonym() bool {
	if p.Type != IdentityTypePseudonym || len(p.User) != PseudonymLen {
		return false
	}
	return p.User[0] == Tag3GPPPseudonymAKA || p.User[0] == Tag3GPPPseudonymSIM
}

// IMSI は永続IDの場合にタグを除いたIMSI部分を返す。
// 永続ID以外の場合は空文字列を返す。
func (p *ParsedIdentity) IMSI() string {
	if !p.IsPermanent() {
		return ""
	}
	return p.User[1:]
}
