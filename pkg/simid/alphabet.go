package simid

// Alphabet は3GPP仮名の符号化に使うbase64アルファベット。
// 値0-63の順に並ぶ。
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const invalidSymbol = 0xff

// alphabetValues は文字からbase64値への逆引き表
var alphabetValues = func() [256]uint8 {
	var t [256]uint8
	for i := range t {
		t[i] = invalidSymbol
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = uint8(i)
	}
	return t
}()

// AlphabetValue は文字のbase64値を返す。
// アルファベット外の文字の場合はfalseを返す。
func AlphabetValue(c byte) (uint8, bool) {
	v := alphabetValues[c]
	if v == invalidSymbol {
		return 0, false
	}
	return v, true
}
