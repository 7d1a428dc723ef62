// Package keystore は3GPP仮名の暗号鍵を鍵インデックスで取得する。
package keystore

import "context"

// Keyring は鍵インデックスから16バイトの仮名暗号鍵を取得するインターフェース
type Keyring interface {
	// Key は指定インデックスの鍵を返す。
	// 未登録の場合はErrKeyNotFoundを返す。
	Key(ctx context.Context, index uint8) ([]byte, error)
}
