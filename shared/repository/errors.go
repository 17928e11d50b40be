package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"net"
	"strings"

	"github.com/lib/pq"
)

func (repo *Repository[T]) translate(operation string, err error) error {
	return TranslateError(repo.entity, operation, err)
}

// TranslateError maps a database error onto the failure taxonomy. Errors with
// no matching category are wrapped with the entity and operation.
func TranslateError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case string(pqErr.Code) == constant.PqErrorCodeUniqueViolation:
			return failure.UniqueConstraintViolation(uniqueMessage(entity, pqErr))
		case string(pqErr.Code) == constant.PqErrorCodeCheckViolation:
			return failure.InvalidEnumValue(fmt.Sprintf("%s violates check constraint %s", entity, pqErr.Constraint))
		case string(pqErr.Code) == constant.PqErrorCodeNumericOutOfRange:
			return failure.InvalidDecimalValue(fmt.Sprintf("%s has a numeric value out of range", entity))
		case string(pqErr.Code) == constant.PqErrorCodeStringTooLong:
			return failure.BadRequestFromString(fmt.Sprintf("%s has a value too long for its column", entity))
		case string(pqErr.Code) == constant.PqErrorCodeNotNullViolation:
			return failure.BadRequestFromString(fmt.Sprintf("%s is missing required column %s", entity, pqErr.Column))
		case string(pqErr.Code.Class()) == constant.PqErrorClassConnectionFailure:
			return failure.StoreUnavailable(err)
		}
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return failure.StoreUnavailable(err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return failure.StoreUnavailable(err)
	}

	return fmt.Errorf("failed to %s (%s): %w", operation, entity, err)
}

func uniqueMessage(entity string, pqErr *pq.Error) string {
	// pq reports the offending key as "Key (email)=(ada@example.com) already exists."
	if field, _, ok := strings.Cut(strings.TrimPrefix(pqErr.Detail, "Key ("), ")"); ok && strings.HasPrefix(pqErr.Detail, "Key (") {
		return fmt.Sprintf("%s with this %s already exists", entity, field)
	}

	return entity + " already exists"
}
