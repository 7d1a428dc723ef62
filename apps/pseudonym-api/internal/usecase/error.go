package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/keystore"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/radius"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/httputil"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/xlat"
)

// ProblemError はビジネスロジックエラーを表す。
type ProblemError struct {
	Status  int
	Title   string
	Detail  string
	Message string // ログメッセージ
	EventID string
}

// Error はerrorインターフェースを実装する。
func (e *ProblemError) Error() string {
	return e.Detail
}

// ToProblemDetail はProblemDetailに変換する。
func (e *ProblemError) ToProblemDetail() *httputil.ProblemDetail {
	return httputil.NewProblemDetail(e.Status, e.Title, e.Detail)
}

// LogLevel はログレベルを返す。
func (e *ProblemError) LogLevel() slog.Level {
	switch {
	case e.Status >= 500:
		return slog.LevelError
	case e.Status == 404:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// 定義済みエラー
var (
	ErrNotAnIdentity = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Identity must be an NAI (user@realm)",
		Message: "identity is not an NAI",
		EventID: "IDENTITY_ERR",
	}

	ErrInvalidIdentity = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Identity has an unrecognized format",
		Message: "unrecognized identity format",
		EventID: "IDENTITY_ERR",
	}

	ErrInvalidLength = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Pseudonym or key has a wrong length",
		Message: "wrong length",
		EventID: "IDENTITY_ERR",
	}

	ErrUnexpectedTag = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Pseudonym tag is not decryptable",
		Message: "unexpected pseudonym tag",
		EventID: "PSEUDONYM_DECRYPT_ERR",
	}

	ErrNotPermanent = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Only permanent SIM/AKA identities can be encrypted",
		Message: "not a permanent identity",
		EventID: "PSEUDONYM_ENCRYPT_ERR",
	}

	ErrInvalidKeyIndex = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Key index must be between 0-15",
		Message: "key index out of range",
		EventID: "PSEUDONYM_ENCRYPT_ERR",
	}

	ErrInvalidIMSI = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "IMSI must be 1-16 digits",
		Message: "IMSI encoding overflow",
		EventID: "PSEUDONYM_ENCRYPT_ERR",
	}

	ErrDecryptionFailed = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Pseudonym could not be decrypted",
		Message: "pseudonym decryption failed",
		EventID: "PSEUDONYM_DECRYPT_ERR",
	}

	ErrInvalidExpression = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Invalid expansion expression",
		Message: "invalid xlat expression",
		EventID: "XLAT_ERR",
	}

	ErrAttributeNotFound = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Referenced attribute does not exist",
		Message: "attribute not found",
		EventID: "XLAT_ERR",
	}

	ErrInvalidAttribute = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Attribute value is not valid hex",
		Message: "invalid attribute value",
		EventID: "XLAT_ERR",
	}

	ErrInvalidPacket = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Invalid RADIUS packet",
		Message: "invalid RADIUS packet",
		EventID: "XLAT_ERR",
	}

	ErrKeyNotFound = &ProblemError{
		Status:  404,
		Title:   "Not Found",
		Detail:  "Pseudonym key does not exist for the key index",
		Message: "pseudonym key not found",
		EventID: "KEY_NOT_FOUND",
	}

	ErrKeyServiceError = &ProblemError{
		Status:  502,
		Title:   "Bad Gateway",
		Detail:  "Key service returned an error",
		Message: "key api error",
		EventID: "KEY_API_ERR",
	}

	ErrKeyServiceUnavailable = &ProblemError{
		Status:  503,
		Title:   "Service Unavailable",
		Detail:  "Key service is temporarily unavailable",
		Message: "key api circuit open",
		EventID: "KEY_API_CB_OPEN",
	}

	ErrValkeyConnection = &ProblemError{
		Status:  500,
		Title:   "Internal Server Error",
		Detail:  "Database connection error",
		Message: "Valkey connection error",
		EventID: "VALKEY_CONN_ERR",
	}

	ErrInvalidKeyMaterial = &ProblemError{
		Status:  500,
		Title:   "Internal Server Error",
		Detail:  "Stored pseudonym key is invalid",
		Message: "invalid pseudonym key",
		EventID: "KEY_INVALID_ERR",
	}
)

// toProblemError は下位層のエラーを定義済みエラーに対応付ける。
// 対応しないエラーはそのまま返す。
func toProblemError(err error) error {
	var pe *ProblemError
	if err == nil || errors.As(err, &pe) {
		return err
	}

	var (
		apiErr  *keystore.APIError
		connErr *keystore.ConnectionError
	)
	switch {
	case errors.Is(err, keystore.ErrKeyNotFound):
		pe = ErrKeyNotFound
	case errors.Is(err, keystore.ErrCircuitOpen):
		pe = ErrKeyServiceUnavailable
	case errors.Is(err, keystore.ErrValkeyUnavailable):
		pe = ErrValkeyConnection
	case errors.As(err, &apiErr), errors.As(err, &connErr), errors.Is(err, keystore.ErrInvalidResponse):
		// 鍵管理APIが返した不正な鍵はErrInvalidKeyも包むため先に判定する
		pe = ErrKeyServiceError
	case errors.Is(err, keystore.ErrInvalidKey):
		pe = ErrInvalidKeyMaterial
	case errors.Is(err, radius.ErrInvalidPacket):
		pe = ErrInvalidPacket
	case errors.Is(err, xlat.ErrAttributeNotFound):
		pe = ErrAttributeNotFound
	case errors.Is(err, xlat.ErrUnknownFunction),
		errors.Is(err, xlat.ErrInvalidExpression),
		errors.Is(err, xlat.ErrInvalidReference),
		errors.Is(err, xlat.ErrMissingArgument):
		pe = ErrInvalidExpression
	case errors.Is(err, simid.ErrNotAnIdentity):
		pe = ErrNotAnIdentity
	case errors.Is(err, simid.ErrUnrecognizedFormat):
		pe = ErrInvalidIdentity
	case errors.Is(err, simid.ErrWrongLength):
		pe = ErrInvalidLength
	case errors.Is(err, simid.ErrUnexpectedTag):
		pe = ErrUnexpectedTag
	case errors.Is(err, simid.ErrNotPermanentIdentity), errors.Is(err, simid.ErrMissingMethodHint):
		pe = ErrNotPermanent
	case errors.Is(err, simid.ErrKeyIndexOutOfRange):
		pe = ErrInvalidKeyIndex
	case errors.Is(err, simid.ErrEncodingOverflow):
		pe = ErrInvalidIMSI
	case errors.Is(err, simid.ErrDecryptionFailed):
		pe = ErrDecryptionFailed
	default:
		return err
	}
	return fmt.Errorf("%w: %v", pe, err)
}
