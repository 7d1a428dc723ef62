package xlat

import (
	"context"
	"errors"
	"fmt"
)

// Resolver は属性名から値を取り出す。
// 属性が存在しない場合はErrAttributeNotFoundを返す。
type Resolver interface {
	Resolve(ctx context.Context, name string) ([]byte, error)
}

// MapResolver はmapに保持した属性値を返すResolver
type MapResolver map[string][]byte

// Resolve はResolverインターフェースを実装する。
func (m MapResolver) Resolve(_ context.Context, name string) ([]byte, error) {
	v, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
	}
	return v, nil
}

// ChainResolver は先頭から順に問い合わせ、最初に見つかった値を返す。
// ErrAttributeNotFound以外のエラーはその時点で返す。
type ChainResolver []Resolver

// Resolve はResolverインターフェースを実装する。
func (c ChainResolver) Resolve(ctx context.Context, name string) ([]byte, error) {
	for _, r := range c {
		if r == nil {
			continue
		}
		v, err := r.Resolve(ctx, name)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrAttributeNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
}

// ResolverFunc は関数をResolverとして使うためのアダプタ
type ResolverFunc func(ctx context.Context, name string) ([]byte, error)

// Resolve はResolverインターフェースを実装する。
func (f ResolverFunc) Resolve(ctx context.Context, name string) ([]byte, error) {
	return f(ctx, name)
}
