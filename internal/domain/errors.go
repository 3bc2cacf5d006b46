package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicateSlug   = errors.New("duplicate slug")
	ErrStorageFailure  = errors.New("storage failure")
	ErrClosedPosition  = errors.New("position closed")
	ErrSettingsMissing = errors.New("site settings missing")
)
