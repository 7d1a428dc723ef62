// Package pseudonym は3GPP仮名（暗号化永続ID）の暗号化・復号を行う。
//
// 仮名のユーザー部は23文字固定で、6bitのタグ、4bitの鍵インデックス、
// AES-128で暗号化したBCD形式のIMSIブロック（128bit）をこの順に
// base64アルファベットで表したもの。暗号化は決定的で、同じ入力からは
// 常に同じ仮名が得られる。
package pseudonym

import (
	"crypto/aes"
	"encoding/base64"
	"fmt"

	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
)

// rawLen は仮名のバイナリ表現の長さ。
// 138bitを6bit境界の144bitまでゼロ埋めした18バイト。
const rawLen = 18

var encoding = base64.NewEncoding(simid.Alphabet).WithPadding(base64.NoPadding)

// Encrypt は永続IDの数字部分（タグ文字を除く）を暗号化し、
// PseudonymLen長の仮名ユーザー部を返す。
// 前提条件はすべて暗号処理の前に検証する。
func Encrypt(digits, key []byte, typeHint simid.IdentityType, methodHint simid.MethodHint, keyIndex uint8) ([]byte, error) {
	if typeHint != simid.IdentityTypePermanent {
		return nil, fmt.Errorf("%w: got %s", simid.ErrNotPermanentIdentity, typeHint)
	}
	tag, err := simid.TagForMethod(methodHint)
	if err != nil {
		return nil, err
	}
	plaintext, err := packBCD(digits)
	if err != nil {
		return nil, err
	}
	if len(key) != simid.KeyLen {
		return nil, fmt.Errorf("%w: key expected %d bytes, got %d bytes",
			simid.ErrWrongLength, simid.KeyLen, len(key))
	}
	if keyIndex > simid.KeyIndexMax {
		return nil, fmt.Errorf("%w: got %d", simid.ErrKeyIndexOutOfRange, keyIndex)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	var ciphertext [aes.BlockSize]byte
	block.Encrypt(ciphertext[:], plaintext[:])
	clear(plaintext[:])

	return encode(tag, keyIndex, ciphertext), nil
}

// EncryptNAI は永続IDのNAIを分類・暗号化し、仮名ユーザー部に元の@domainを付けて返す
func EncryptNAI(id, key []byte, keyIndex uint8) ([]byte, error) {
	typeHint, methodHint, err := simid.Classify(id)
	if err != nil {
		return nil, err
	}
	user, domain := simid.SplitNAI(id)

	enc, err := Encrypt(user[1:], key, typeHint, methodHint, keyIndex)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(enc)+len(domain))
	out = append(out, enc...)
	return append(out, domain...), nil
}

// Decrypt は仮名（@domain付きでも可）を復号し、
// 平文タグ文字 + IMSI + 元の@domain を返す。
func Decrypt(id, key []byte) ([]byte, error) {
	user, domain := simid.SplitNAI(id)
	if len(user) != simid.PseudonymLen {
		return nil, fmt.Errorf("%w: 3gpp pseudonym expected %d bytes, got %d bytes",
			simid.ErrWrongLength, simid.PseudonymLen, len(user))
	}
	if len(key) != simid.KeyLen {
		return nil, fmt.Errorf("%w: key expected %d bytes, got %d bytes",
			simid.ErrWrongLength, simid.KeyLen, len(key))
	}
	tag, err := simid.PseudonymTag(user)
	if err != nil {
		return nil, err
	}
	methodHint, err := simid.MethodForTag(tag)
	if err != nil {
		return nil, err
	}
	plainTag, err := simid.PermanentTag(methodHint)
	if err != nil {
		return nil, err
	}

	_, _, ciphertext, err := decode(user)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	var plaintext [aes.BlockSize]byte
	block.Decrypt(plaintext[:], ciphertext[:])
	digits, err := unpackBCD(plaintext[:])
	clear(plaintext[:])
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 1+len(digits)+len(domain))
	out = append(out, plainTag)
	out = append(out, digits...)
	return append(out, domain...), nil
}

// KeyIndex は仮名NAIに埋め込まれた鍵インデックスを返す
func KeyIndex(id []byte) (uint8, error) {
	return simid.PseudonymKeyIndex(id)
}

// encode はタグ・鍵インデックス・暗号ブロックをビット連結して符号化する
func encode(tag, keyIndex uint8, ct [aes.BlockSize]byte) []byte {
	var raw [rawLen]byte
	raw[0] = tag<<2 | keyIndex>>2
	raw[1] = (keyIndex&0x03)<<6 | ct[0]>>2
	for j := 1; j < aes.BlockSize; j++ {
		raw[1+j] = ct[j-1]<<6 | ct[j]>>2
	}
	raw[rawLen-1] = ct[aes.BlockSize-1] << 6

	// 末尾の1文字はゼロ埋めビットのみなので落とす
	out := make([]byte, encoding.EncodedLen(rawLen))
	encoding.Encode(out, raw[:])
	return out[:simid.PseudonymLen]
}

// decode はencodeの逆変換。全文字がアルファベット内であることを先に検証する。
func decode(user []byte) (tag, keyIndex uint8, ct [aes.BlockSize]byte, err error) {
	for i, c := range user {
		if _, ok := simid.AlphabetValue(c); !ok {
			return 0, 0, ct, fmt.Errorf("%w: symbol outside base64 alphabet at offset %d",
				simid.ErrDecryptionFailed, i)
		}
	}

	src := make([]byte, 0, simid.PseudonymLen+1)
	src = append(src, user...)
	src = append(src, simid.Alphabet[0])

	var raw [rawLen]byte
	if _, err := encoding.Decode(raw[:], src); err != nil {
		return 0, 0, ct, fmt.Errorf("%w: %v", simid.ErrDecryptionFailed, err)
	}

	tag = raw[0] >> 2
	keyIndex = (raw[0]&0x03)<<2 | raw[1]>>6
	for j := 0; j < aes.BlockSize; j++ {
		ct[j] = raw[1+j]<<2 | raw[2+j]>>6
	}
	return tag, keyIndex, ct, nil
}
