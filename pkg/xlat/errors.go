package xlat

import "errors"

// 展開エラー
var (
	// ErrUnknownFunction は登録されていない関数名が指定された場合のエラー
	ErrUnknownFunction = errors.New("unknown expansion function")

	// ErrInvalidExpression は展開式の構文が不正な場合のエラー
	ErrInvalidExpression = errors.New("invalid expansion expression")

	// ErrInvalidReference は属性参照（&name）の構文が不正な場合のエラー
	ErrInvalidReference = errors.New("invalid attribute reference")

	// ErrMissingArgument は必須引数が不足している場合のエラー
	ErrMissingArgument = errors.New("missing argument")

	// ErrAttributeNotFound は参照先の属性が存在しない場合のエラー
	ErrAttributeNotFound = errors.New("attribute not found")
)
