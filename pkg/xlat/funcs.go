package xlat

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/oyaguma3/eapsim-pseudonym/pkg/logging"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/pseudonym"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
)

// resolveNAI はIdentity属性を取得し、NAI形式であることを確認する
func resolveNAI(ctx context.Context, res Resolver, ref string) ([]byte, error) {
	id, err := res.Resolve(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to expand ID attribute: %w", err)
	}
	if !simid.IsNAI(id) {
		return nil, fmt.Errorf("%w: SIM ID is not an NAI", simid.ErrNotAnIdentity)
	}
	return id, nil
}

// simIDMethod はIdentityが示すメソッド名（SIM/AKA）を返す
func (r *Registry) simIDMethod(ctx context.Context, args string, res Resolver) ([]byte, error) {
	ref, err := parseOneRef(args)
	if err != nil {
		return nil, err
	}
	id, err := resolveNAI(ctx, res, ref)
	if err != nil {
		return nil, err
	}
	_, method, err := simid.Classify(id)
	if err != nil {
		return nil, err
	}
	return []byte(method.String()), nil
}

// simIDType はIdentity種別名を返す
func (r *Registry) simIDType(ctx context.Context, args string, res Resolver) ([]byte, error) {
	ref, err := parseOneRef(args)
	if err != nil {
		return nil, err
	}
	id, err := resolveNAI(ctx, res, ref)
	if err != nil {
		return nil, err
	}
	typ, _, err := simid.Classify(id)
	if err != nil {
		return nil, err
	}
	return []byte(typ.String()), nil
}

// pseudonymKeyIndex は3GPP仮名の鍵インデックスを10進数で返す
func (r *Registry) pseudonymKeyIndex(ctx context.Context, args string, res Resolver) ([]byte, error) {
	ref, err := parseOneRef(args)
	if err != nil {
		return nil, err
	}
	id, err := res.Resolve(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to expand ID attribute: %w", err)
	}
	idx, err := pseudonym.KeyIndex(id)
	if err != nil {
		return nil, err
	}
	return strconv.AppendUint(nil, uint64(idx), 10), nil
}

// pseudonymDecryptNAI は3GPP仮名を復号して永続IDのNAIを返す
func (r *Registry) pseudonymDecryptNAI(ctx context.Context, args string, res Resolver) ([]byte, error) {
	idRef, keyRef, rest, err := parseTwoRefs(args)
	if err != nil {
		return nil, err
	}
	if err := endArgs(rest); err != nil {
		return nil, err
	}

	id, err := res.Resolve(ctx, idRef)
	if err != nil {
		return nil, fmt.Errorf("failed to expand ID attribute: %w", err)
	}
	key, err := res.Resolve(ctx, keyRef)
	if err != nil {
		return nil, fmt.Errorf("failed to expand Key attribute: %w", err)
	}

	user, _ := simid.SplitNAI(id)
	r.logger.DebugContext(ctx, "decrypting 3gpp pseudonym",
		slog.String("pseudonym", string(user)))

	out, err := pseudonym.Decrypt(id, key)
	if err != nil {
		return nil, fmt.Errorf("failed decrypting SIM ID: %w", err)
	}
	return out, nil
}

// pseudonymEncryptNAI は永続IDを暗号化して3GPP仮名のNAIを返す
func (r *Registry) pseudonymEncryptNAI(ctx context.Context, args string, res Resolver) ([]byte, error) {
	idRef, keyRef, rest, err := parseTwoRefs(args)
	if err != nil {
		return nil, err
	}
	rest, err = nextArg(rest, "key index")
	if err != nil {
		return nil, err
	}
	keyIndex, err := parseKeyIndex(rest)
	if err != nil {
		return nil, err
	}

	id, err := res.Resolve(ctx, idRef)
	if err != nil {
		return nil, fmt.Errorf("failed to expand ID attribute: %w", err)
	}
	// タグ文字の分だけ+1
	if n := simid.UserLen(id); n > simid.IMSIMaxLen+1 {
		return nil, fmt.Errorf("%w: permanent identity expected at most %d bytes, got %d bytes",
			simid.ErrWrongLength, simid.IMSIMaxLen+1, n)
	}
	key, err := res.Resolve(ctx, keyRef)
	if err != nil {
		return nil, fmt.Errorf("failed to expand Key attribute: %w", err)
	}

	out, err := pseudonym.EncryptNAI(id, key, keyIndex)
	if err != nil {
		return nil, fmt.Errorf("failed encrypting SIM ID: %w", err)
	}
	r.logger.DebugContext(ctx, "encrypted 3gpp pseudonym",
		logging.WithKeyIndex(keyIndex))
	return out, nil
}
