package keystore

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/config"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/apperr"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/valkey"
	"github.com/redis/go-redis/v9"
)

// ValkeyClient はValkeyクライアントをラップする。
type ValkeyClient struct {
	client *redis.Client
}

// NewValkeyClient は新しいValkeyClientを生成する。
func NewValkeyClient(cfg *config.Config) (*ValkeyClient, error) {
	opts := valkey.DefaultOptions().
		WithAddr(cfg.RedisAddr()).
		WithPassword(cfg.RedisPass).
		WithTimeouts(config.ValkeyConnectTimeout, config.ValkeyCommandTimeout, config.ValkeyCommandTimeout).
		WithPool(config.ValkeyPoolSize, config.ValkeyMinIdleConns)

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}
	return &ValkeyClient{client: client}, nil
}

// Close は接続を閉じる。
func (v *ValkeyClient) Close() error {
	return v.client.Close()
}

// Client は内部のredis.Clientを返す。
func (v *ValkeyClient) Client() *redis.Client {
	return v.client
}

// ValkeyKeyring はValkeyに保存された鍵を返すKeyring。
// 鍵は "pskey:<index>" にhex文字列で格納する。
type ValkeyKeyring struct {
	vc *ValkeyClient
}

// NewValkeyKeyring は新しいValkeyKeyringを生成する。
func NewValkeyKeyring(vc *ValkeyClient) *ValkeyKeyring {
	return &ValkeyKeyring{vc: vc}
}

// Key はKeyringインターフェースを実装する。
func (k *ValkeyKeyring) Key(ctx context.Context, index uint8) ([]byte, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}

	name := pseudonymKeyName(index)
	val, err := k.vc.Client().Get(ctx, name).Result()
	if err != nil {
		if valkey.IsKeyNotFound(err) {
			return nil, fmt.Errorf("%w: index %d", ErrKeyNotFound, index)
		}
		return nil, valkeyError("GET", name, err)
	}
	return DecodeKey(val)
}

// SetKey は鍵をValkeyに登録する。
func (k *ValkeyKeyring) SetKey(ctx context.Context, index uint8, key []byte) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	if len(key) != simid.KeyLen {
		return fmt.Errorf("%w: expected %d bytes, got %d bytes", ErrInvalidKey, simid.KeyLen, len(key))
	}

	name := pseudonymKeyName(index)
	if err := k.vc.Client().Set(ctx, name, hex.EncodeToString(key), 0).Err(); err != nil {
		return valkeyError("SET", name, err)
	}
	return nil
}

// valkeyError はValkey操作エラーを接続エラーとコマンドエラーに分類して包む
func valkeyError(op, key string, err error) error {
	cause := apperr.ErrValkeyCommand
	if valkey.IsConnectionError(err) {
		cause = apperr.ErrValkeyConnection
	}
	return fmt.Errorf("%w: %w", ErrValkeyUnavailable, apperr.NewValkeyError(op, key, fmt.Errorf("%w: %w", cause, err)))
}
