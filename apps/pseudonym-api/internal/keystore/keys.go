package keystore

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
)

// KeyPrefixPseudonymKey は仮名暗号鍵のValkeyキープレフィックス
const KeyPrefixPseudonymKey = "pskey:"

// pseudonymKeyName は鍵インデックスに対応するValkeyキーを返す
func pseudonymKeyName(index uint8) string {
	return KeyPrefixPseudonymKey + strconv.Itoa(int(index))
}

// checkIndex は鍵インデックスが0-15の範囲内かを確認する
func checkIndex(index uint8) error {
	if index > simid.KeyIndexMax {
		return fmt.Errorf("%w: got %d", simid.ErrKeyIndexOutOfRange, index)
	}
	return nil
}

// DecodeKey はhex文字列の鍵を16バイトにデコードする
func DecodeKey(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: hex decode: %v", ErrInvalidKey, err)
	}
	if len(key) != simid.KeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d bytes", ErrInvalidKey, simid.KeyLen, len(key))
	}
	return key, nil
}
