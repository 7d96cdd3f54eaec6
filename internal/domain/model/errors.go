package model

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogUnavailable カタログを読み込めない
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrInvalidAxis 通り軸のデータが不正
	ErrInvalidAxis = errors.New("invalid street axis")
	// ErrSessionNotFound セッションが存在しない
	ErrSessionNotFound = errors.New("session not found")
	// ErrUnknownCategory 未知のカテゴリ
	ErrUnknownCategory = errors.New("unknown category")
)

// UnknownCategoryError 未知のカテゴリ名を表す
type UnknownCategoryError struct {
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category: %q", e.Value)
}

func (e *UnknownCategoryError) Unwrap() error {
	return ErrUnknownCategory
}
