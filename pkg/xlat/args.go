package xlat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
)

// isRefChar は属性参照名に使える文字かを返す
func isRefChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == ':', c == '[', c == ']':
		return true
	}
	return false
}

// parseRef は先頭の属性参照（&name）を読み取り、属性名と残りの文字列を返す
func parseRef(s string) (name, rest string, err error) {
	if s == "" || s[0] != '&' {
		return "", s, fmt.Errorf("%w: expected '&'", ErrInvalidReference)
	}
	i := 1
	for i < len(s) && isRefChar(s[i]) {
		i++
	}
	if i == 1 {
		return "", s, fmt.Errorf("%w: empty attribute name", ErrInvalidReference)
	}
	return s[1:i], s[i:], nil
}

// nextArg は引数区切り（空白1文字）を読み飛ばす
func nextArg(rest, what string) (string, error) {
	if rest == "" || rest[0] != ' ' {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, what)
	}
	return rest[1:], nil
}

// endArgs は引数の後ろに余分な文字がないことを確認する
func endArgs(rest string) error {
	if strings.TrimRight(rest, " \t") != "" {
		return fmt.Errorf("%w: unexpected trailing %q", ErrInvalidReference, rest)
	}
	return nil
}

// parseOneRef は "&id" 形式の引数を解析する
func parseOneRef(args string) (string, error) {
	name, rest, err := parseRef(strings.TrimLeft(args, " \t"))
	if err != nil {
		return "", err
	}
	if err := endArgs(rest); err != nil {
		return "", err
	}
	return name, nil
}

// parseTwoRefs は "&id &key" 形式の引数を解析する
func parseTwoRefs(args string) (idRef, keyRef, rest string, err error) {
	idRef, rest, err = parseRef(strings.TrimLeft(args, " \t"))
	if err != nil {
		return "", "", "", fmt.Errorf("id: %w", err)
	}
	rest, err = nextArg(rest, "key argument")
	if err != nil {
		return "", "", "", err
	}
	keyRef, rest, err = parseRef(rest)
	if err != nil {
		return "", "", "", fmt.Errorf("key: %w", err)
	}
	return idRef, keyRef, rest, nil
}

// parseKeyIndex は10進数の鍵インデックス（0-15）を解析する
func parseKeyIndex(s string) (uint8, error) {
	s = strings.TrimRight(s, " \t")
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v > simid.KeyIndexMax {
		return 0, fmt.Errorf("%w: got %q", simid.ErrKeyIndexOutOfRange, s)
	}
	return uint8(v), nil
}
