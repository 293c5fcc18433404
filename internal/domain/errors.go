package domain

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidOriginKey     = errors.New("invalid origin key")
	ErrWatermarkNotFound    = errors.New("watermark not found")
)
