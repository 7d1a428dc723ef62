// Package usecase はIdentity分類と仮名暗号化のビジネスロジックを提供する。
package usecase

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=usecase

import (
	"context"

	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/dto"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/xlat"
)

// Keyring は仮名暗号鍵取得のインターフェース。
type Keyring interface {
	Key(ctx context.Context, index uint8) ([]byte, error)
}

// Expander は展開式評価のインターフェース。
type Expander interface {
	Eval(ctx context.Context, expr string, res xlat.Resolver) ([]byte, error)
}

// PseudonymUseCaseInterface は仮名ユースケースのインターフェース。
type PseudonymUseCaseInterface interface {
	Classify(ctx context.Context, req *dto.ClassifyRequest) (*dto.ClassifyResponse, error)
	Encrypt(ctx context.Context, req *dto.EncryptRequest) (*dto.EncryptResponse, error)
	Decrypt(ctx context.Context, req *dto.DecryptRequest) (*dto.DecryptResponse, error)
	Expand(ctx context.Context, req *dto.XlatRequest) (*dto.XlatResponse, error)
}
