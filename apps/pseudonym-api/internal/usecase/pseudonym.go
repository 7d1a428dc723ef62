package usecase

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/config"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/dto"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/eap"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/radius"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/logging"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/pseudonym"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/xlat"
)

// 展開式から鍵を参照する属性名。
// "Pseudonym-Key" はデフォルト鍵、"Pseudonym-Key-<n>" は鍵インデックスnの鍵を返す。
const (
	AttrPseudonymKey        = "Pseudonym-Key"
	controlListQualifier    = "control:"
	hexAttributeValuePrefix = "0x"
)

// PseudonymUseCase は仮名ユースケースを実装する。
type PseudonymUseCase struct {
	keyring  Keyring
	expander Expander
	cfg      *config.Config
	fields   *logging.CommonFields
}

// NewPseudonymUseCase は新しいPseudonymUseCaseを生成する。
func NewPseudonymUseCase(keyring Keyring, expander Expander, cfg *config.Config) *PseudonymUseCase {
	return &PseudonymUseCase{
		keyring:  keyring,
		expander: expander,
		cfg:      cfg,
		fields:   logging.NewCommonFields(logging.NewMasker(cfg.LogMaskIMSI)),
	}
}

// Classify はIdentityの種別とメソッドヒントを判定する。
func (u *PseudonymUseCase) Classify(_ context.Context, req *dto.ClassifyRequest) (*dto.ClassifyResponse, error) {
	p, err := simid.Parse(req.Identity)
	if err != nil {
		return nil, toProblemError(err)
	}

	resp := &dto.ClassifyResponse{
		IdentityType: p.Type.String(),
		MethodHint:   p.Method.String(),
		EAPType:      eap.TypeForMethod(p.Method),
		UserLen:      len(p.User),
		Realm:        p.Realm,
	}

	// 暗号化3GPP仮名の場合はタグと鍵インデックスも返す
	if p.Is3GPPPseudonym() {
		tag, err := simid.PseudonymTag([]byte(p.User))
		if err != nil {
			return nil, toProblemError(err)
		}
		idx, err := pseudonym.KeyIndex([]byte(p.User))
		if err != nil {
			return nil, toProblemError(err)
		}
		resp.PseudonymTag = &tag
		resp.KeyIndex = &idx
	}
	return resp, nil
}

// Encrypt は永続IDを暗号化して3GPP仮名を生成する。
func (u *PseudonymUseCase) Encrypt(ctx context.Context, req *dto.EncryptRequest) (*dto.EncryptResponse, error) {
	// 1. 暗号化対象の判定（鍵取得前に行う）
	p, err := simid.Parse(req.Identity)
	if err != nil {
		return nil, toProblemError(err)
	}
	if !p.IsPermanent() {
		return nil, toProblemError(fmt.Errorf("%w: got %s", simid.ErrNotPermanentIdentity, p.Type))
	}

	// 2. 鍵インデックス決定
	keyIndex := u.cfg.DefaultKeyIndex
	if req.KeyIndex != nil {
		keyIndex = *req.KeyIndex
	}
	if keyIndex > simid.KeyIndexMax {
		return nil, toProblemError(fmt.Errorf("%w: got %d", simid.ErrKeyIndexOutOfRange, keyIndex))
	}

	// 3. 鍵取得
	key, err := u.keyring.Key(ctx, keyIndex)
	if err != nil {
		return nil, toProblemError(err)
	}

	// 4. 暗号化
	out, err := pseudonym.EncryptNAI([]byte(req.Identity), key, keyIndex)
	clear(key)
	if err != nil {
		return nil, toProblemError(err)
	}

	slog.DebugContext(ctx, "pseudonym encrypted",
		u.fields.WithIdentity(req.Identity),
		logging.WithMethodHint(p.Method),
		logging.WithKeyIndex(keyIndex),
	)
	return &dto.EncryptResponse{Pseudonym: string(out), KeyIndex: keyIndex}, nil
}

// Decrypt は3GPP仮名を復号して永続IDを返す。
// 鍵インデックスは仮名から読み取る。
func (u *PseudonymUseCase) Decrypt(ctx context.Context, req *dto.DecryptRequest) (*dto.DecryptResponse, error) {
	id := []byte(req.Pseudonym)

	// 1. 長さ・タグの検証（鍵取得前に行う）
	keyIndex, err := pseudonym.KeyIndex(id)
	if err != nil {
		return nil, toProblemError(err)
	}
	user, _ := simid.SplitNAI(id)
	tag, err := simid.PseudonymTag(user)
	if err != nil {
		return nil, toProblemError(err)
	}
	if _, err := simid.MethodForTag(tag); err != nil {
		return nil, toProblemError(err)
	}

	// 2. 鍵取得
	key, err := u.keyring.Key(ctx, keyIndex)
	if err != nil {
		return nil, toProblemError(err)
	}

	// 3. 復号
	out, err := pseudonym.Decrypt(id, key)
	clear(key)
	if err != nil {
		return nil, toProblemError(err)
	}

	identity := string(out)
	slog.DebugContext(ctx, "pseudonym decrypted",
		u.fields.WithIdentity(identity),
		logging.WithKeyIndex(keyIndex),
	)
	return &dto.DecryptResponse{Identity: identity, KeyIndex: keyIndex}, nil
}

// Expand は展開式を評価する。
// 属性はリクエストの属性、RADIUSパケット、鍵の順に参照する。
func (u *PseudonymUseCase) Expand(ctx context.Context, req *dto.XlatRequest) (*dto.XlatResponse, error) {
	attrs, err := attributeResolver(req.Attributes)
	if err != nil {
		return nil, toProblemError(err)
	}

	chain := xlat.ChainResolver{attrs}
	if len(req.RadiusPacket) > 0 {
		pr, err := radius.NewPacketResolver(req.RadiusPacket, []byte(u.cfg.RadiusSecret))
		if err != nil {
			return nil, toProblemError(err)
		}
		chain = append(chain, pr)
	}
	chain = append(chain, xlat.ResolverFunc(u.resolveKey))

	out, err := u.expander.Eval(ctx, req.Expression, chain)
	if err != nil {
		return nil, toProblemError(err)
	}
	return &dto.XlatResponse{Result: string(out)}, nil
}

// resolveKey は鍵属性の参照をKeyringから解決する
func (u *PseudonymUseCase) resolveKey(ctx context.Context, name string) ([]byte, error) {
	attr := strings.TrimPrefix(name, controlListQualifier)
	suffix, ok := strings.CutPrefix(attr, AttrPseudonymKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", xlat.ErrAttributeNotFound, name)
	}

	keyIndex := u.cfg.DefaultKeyIndex
	if suffix != "" {
		n, ok := strings.CutPrefix(suffix, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %s", xlat.ErrAttributeNotFound, name)
		}
		v, err := strconv.ParseUint(n, 10, 8)
		if err != nil || v > simid.KeyIndexMax {
			return nil, fmt.Errorf("%w: %s", simid.ErrKeyIndexOutOfRange, name)
		}
		keyIndex = uint8(v)
	}
	return u.keyring.Key(ctx, keyIndex)
}

// attributeResolver はリクエストの属性をResolverに変換する。
// "0x" で始まる値はhexとしてデコードする。
func attributeResolver(attrs map[string]string) (xlat.MapResolver, error) {
	m := make(xlat.MapResolver, len(attrs))
	for name, v := range attrs {
		if s, ok := strings.CutPrefix(v, hexAttributeValuePrefix); ok {
			b, err := hex.DecodeString(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAttribute, name, err)
			}
			m[name] = b
			continue
		}
		m[name] = []byte(v)
	}
	return m, nil
}
