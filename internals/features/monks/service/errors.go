package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("record not found")
	ErrStorage       = errors.New("storage error")
	ErrUserCancelled = errors.New("cancelled by user")
)

// storageErr membungkus error I/O mentah jadi ErrStorage (cause tetap bisa di-unwrap).
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
