package service

import (
	"errors"

	"minddock/internal/pkg/apperror"
	"minddock/internal/repository/contract"
)

// notFoundOnMiss reports a write that found no row, typically because a
// concurrent delete landed after the record was read.
func notFoundOnMiss(err error, message string) error {
	if errors.Is(err, contract.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return err
}
