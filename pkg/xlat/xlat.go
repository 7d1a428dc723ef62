// Package xlat はEAP-SIM/EAP-AKAのIdentityを扱う属性展開関数を提供する。
//
// 展開式は "%{name:args}" または "name:args" の形式で、引数は
// 空白1文字で区切った属性参照（&Attr-Name）と鍵インデックスからなる。
// 属性値の取得はResolverに委譲する。
package xlat

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// 展開関数名
const (
	FuncSIMIDMethod           = "sim_id_method"
	FuncSIMIDType             = "sim_id_type"
	Func3GPPPseudonymKeyIndex = "3gpp_pseudonym_key_index"
	Func3GPPPseudonymDecrypt  = "3gpp_pseudonym_decrypt_nai"
	Func3GPPPseudonymEncrypt  = "3gpp_pseudonym_encrypt_nai"
)

// Func は展開関数のシグネチャ
type Func func(ctx context.Context, args string, r Resolver) ([]byte, error)

// Registry は展開関数名から関数への対応を保持する。
// 生成後は読み取り専用で、複数goroutineから同時に使用できる。
type Registry struct {
	funcs  map[string]Func
	logger *slog.Logger
}

// Option はRegistryの設定を変更する
type Option func(*Registry)

// WithLogger はデバッグログの出力先を設定する
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry はSIM/AKA用の展開関数を登録したRegistryを生成する
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	r.funcs = map[string]Func{
		FuncSIMIDMethod:           r.simIDMethod,
		FuncSIMIDType:             r.simIDType,
		Func3GPPPseudonymKeyIndex: r.pseudonymKeyIndex,
		Func3GPPPseudonymDecrypt:  r.pseudonymDecryptNAI,
		Func3GPPPseudonymEncrypt:  r.pseudonymEncryptNAI,
	}
	return r
}

// Names は登録済みの関数名を昇順で返す
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call は名前で指定した展開関数を実行する
func (r *Registry) Call(ctx context.Context, name, args string, res Resolver) ([]byte, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return fn(ctx, args, res)
}

// Eval は展開式を解析して実行する
func (r *Registry) Eval(ctx context.Context, expr string, res Resolver) ([]byte, error) {
	name, args, err := ParseExpression(expr)
	if err != nil {
		return nil, err
	}
	return r.Call(ctx, name, args, res)
}

// ParseExpression は展開式を関数名と引数に分割する。
// "%{name:args}" と "name:args" の両方を受け付ける。
func ParseExpression(expr string) (name, args string, err error) {
	s := strings.TrimSpace(expr)
	if strings.HasPrefix(s, "%{") {
		if !strings.HasSuffix(s, "}") {
			return "", "", fmt.Errorf("%w: unterminated %%{", ErrInvalidExpression)
		}
		s = s[2 : len(s)-1]
	}

	name, args, _ = strings.Cut(s, ":")
	if name == "" {
		return "", "", fmt.Errorf("%w: empty function name", ErrInvalidExpression)
	}
	return name, args, nil
}
