package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateKey surfaces unique-constraint violations without leaking
// gorm into the service layer. Requires TranslateError on the gorm config.
var ErrDuplicateKey = errors.New("duplicate key")

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}
