package keystore

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
)

// StaticKeyring は設定で与えた固定の鍵を返すKeyring
type StaticKeyring struct {
	keys map[uint8][]byte
}

// NewStaticKeyring は鍵インデックスと鍵の対応からStaticKeyringを生成する。
// 渡したmapはコピーされる。
func NewStaticKeyring(keys map[uint8][]byte) (*StaticKeyring, error) {
	k := &StaticKeyring{keys: make(map[uint8][]byte, len(keys))}
	for index, key := range keys {
		if err := checkIndex(index); err != nil {
			return nil, err
		}
		if len(key) != simid.KeyLen {
			return nil, fmt.Errorf("%w: index %d: expected %d bytes, got %d bytes",
				ErrInvalidKey, index, simid.KeyLen, len(key))
		}
		k.keys[index] = append([]byte(nil), key...)
	}
	return k, nil
}

// ParseStaticKeys は "index:hex,index:hex" 形式の文字列からStaticKeyringを生成する。
func ParseStaticKeys(s string) (*StaticKeyring, error) {
	keys := make(map[uint8][]byte)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idxStr, hexKey, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: entry %q must be index:hex", ErrInvalidKey, entry)
		}
		idx, err := strconv.ParseUint(strings.TrimSpace(idxStr), 10, 8)
		if err != nil || idx > simid.KeyIndexMax {
			return nil, fmt.Errorf("%w: entry %q", simid.ErrKeyIndexOutOfRange, entry)
		}
		if _, dup := keys[uint8(idx)]; dup {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrInvalidKey, idx)
		}
		key, err := DecodeKey(hexKey)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", idx, err)
		}
		keys[uint8(idx)] = key
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no keys configured", ErrInvalidKey)
	}
	return NewStaticKeyring(keys)
}

// Key はKeyringインターフェースを実装する。
// 呼び出し側が書き換えても内部の鍵が壊れないようコピーを返す。
func (k *StaticKeyring) Key(_ context.Context, index uint8) ([]byte, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	key, ok := k.keys[index]
	if !ok {
		return nil, fmt.Errorf("%w: index %d", ErrKeyNotFound, index)
	}
	return append([]byte(nil), key...), nil
}
