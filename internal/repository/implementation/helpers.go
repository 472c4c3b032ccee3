package implementation

import (
	"errors"

	"minddock/internal/repository/contract"
	"minddock/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// translateCreateError needs gorm.Config.TranslateError so drivers report
// unique violations as gorm.ErrDuplicatedKey.
func translateCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return contract.ErrDuplicateKey
	}
	return err
}

// requireRow turns a write that matched no row into ErrNotFound. Updates
// never inserts, so a row deleted since it was read stays deleted.
func requireRow(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}
