package simid

import (
	"errors"
	"fmt"
)

// Identity解析エラー
var (
	// ErrNotAnIdentity はNAI形式（user@realm）でない場合のエラー
	ErrNotAnIdentity = errors.New("not an NAI identity")

	// ErrUnrecognizedFormat は先頭タグ文字がアルファベットに含まれない場合のエラー
	ErrUnrecognizedFormat = errors.New("unrecognized identity format")

	// ErrWrongLength は仮名または鍵の長さが不正な場合のエラー
	ErrWrongLength = errors.New("wrong length")

	// ErrUnexpectedTag は仮名のタグ値が復号可能な値でない場合のエラー
	ErrUnexpectedTag = errors.New("unexpected pseudonym tag")
)

// 暗号化前提条件エラー
var (
	// ErrNotPermanentIdentity は暗号化対象が永続IDでない場合のエラー
	ErrNotPermanentIdentity = errors.New("not a permanent identity")

	// ErrMissingMethodHint は暗号化対象にSIM/AKAのメソッドヒントがない場合のエラー
	ErrMissingMethodHint = errors.New("identity does not contain a method hint")
)

// 暗号処理エラー
var (
	// ErrDecryptionFailed は復号結果の構造が不正な場合のエラー
	ErrDecryptionFailed = errors.New("pseudonym decryption failed")

	// ErrEncodingOverflow はIMSIのBCD符号化に失敗した場合のエラー
	ErrEncodingOverflow = errors.New("pseudonym encoding overflow")
)

// ErrKeyIndexOutOfRange は鍵インデックスが0-15の範囲外の場合のエラー。
// ErrEncodingOverflowとしても判定できる。
var ErrKeyIndexOutOfRange = fmt.Errorf("%w: key index must be between 0-%d", ErrEncodingOverflow, KeyIndexMax)
