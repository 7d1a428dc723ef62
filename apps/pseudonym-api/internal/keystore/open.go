package keystore

import (
	"fmt"

	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/config"
)

// Open は設定のKEY_SOURCEに応じたKeyringを生成する。
// 戻り値のclose関数は終了時に必ず呼び出すこと。
func Open(cfg *config.Config) (Keyring, func() error, error) {
	noop := func() error { return nil }

	switch cfg.KeySource {
	case config.KeySourceValkey:
		vc, err := NewValkeyClient(cfg)
		if err != nil {
			return nil, noop, err
		}
		return NewValkeyKeyring(vc), vc.Close, nil
	case config.KeySourceRemote:
		return NewRemoteKeyring(cfg), noop, nil
	case config.KeySourceStatic:
		k, err := ParseStaticKeys(cfg.StaticKeys)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to parse STATIC_KEYS: %w", err)
		}
		return k, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown key source: %q", cfg.KeySource)
	}
}
