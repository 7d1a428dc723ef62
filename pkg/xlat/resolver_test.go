package xlat

import (
	"context"
	"errors"
	"testing"
)

func TestChainResolver(t *testing.T) {
	ctx := context.Background()
	errBackend := errors.New("backend down")

	first := MapResolver{"A": []byte("first")}
	second := MapResolver{"A": []byte("second"), "B": []byte("b")}
	failing := ResolverFunc(func(context.Context, string) ([]byte, error) {
		return nil, errBackend
	})

	chain := ChainResolver{first, nil, second}

	got, err := chain.Resolve(ctx, "A")
	if err != nil || string(got) != "first" {
		t.Errorf("Resolve(A) = (%q, %v), want first", got, err)
	}
	got, err = chain.Resolve(ctx, "B")
	if err != nil || string(got) != "b" {
		t.Errorf("Resolve(B) = (%q, %v), want b", got, err)
	}
	if _, err := chain.Resolve(ctx, "C"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("Resolve(C): got %v, want ErrAttributeNotFound", err)
	}

	// 見つからない以外のエラーは後続に進まない
	chain = ChainResolver{failing, second}
	if _, err := chain.Resolve(ctx, "B"); !errors.Is(err, errBackend) {
		t.Errorf("got %v, want backend error", err)
	}
}

func TestMapResolverNotFound(t *testing.T) {
	if _, err := (MapResolver{}).Resolve(context.Background(), "X"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("got %v, want ErrAttributeNotFound", err)
	}
}
