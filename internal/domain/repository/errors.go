package repository

import "errors"

// Storage constraint failures, translated from driver errors by the gorm
// implementations. The original driver error stays wrapped for logging.
var (
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrRelatedNotFound = errors.New("related record not found")
)
