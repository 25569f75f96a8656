package database

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateName      = errors.New("name already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrPaymentFailed      = errors.New("an error occurred while processing the purchase")
)

// Postgres error codes the stores translate into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func IsUniqueViolation(err error) bool {
	return hasPQCode(err, codeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasPQCode(err, codeForeignKeyViolation)
}

func IsCheckViolation(err error) bool {
	return hasPQCode(err, codeCheckViolation)
}

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
