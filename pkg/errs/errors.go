package errs

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrUnauthorized            = errors.New("Forbidden access")
	ErrNotFound                = errors.New("Resource not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrAccountDisabled         = errors.New("Account has been disabled")
	ErrEmailAlreadyUsed        = errors.New("Email has already been used")
	ErrInvalidEmail            = errors.New("Email address is not valid")
	ErrWeakPassword            = errors.New("Password must be at least 6 characters long")
	ErrInvalidRole             = errors.New("Role must be either customer or seller")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrTokenExpired            = errors.New("The token is already expired")
	ErrNotAnImage              = errors.New("Uploaded file is not an image")
	ErrConflict                = errors.New("Conflicting record found")
	ErrProductNotFound         = errors.New("Product not found")
	ErrInvalidCategory         = errors.New("Unknown product category")
	ErrEmptyCart               = errors.New("Cart is empty")
	ErrOrderPersistence        = errors.New("Failed to persist the order")
)

// InsufficientStockError carries the offending product and the requested vs
// available counts so the storefront can render an actionable message.
type InsufficientStockError struct {
	ProductName string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s: requested %d, available %d", e.ProductName, e.Requested, e.Available)
}

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusNotLoggedIn,
	ErrUnauthorized:            ErrStatusNoPermission,
	ErrNotFound:                ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrAccountDisabled:         ErrStatusNoPermission,
	ErrEmailAlreadyUsed:        ErrStatusClient,
	ErrInvalidEmail:            ErrStatusClient,
	ErrWeakPassword:            ErrStatusClient,
	ErrInvalidRole:             ErrStatusClient,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
	ErrTokenExpired:            ErrStatusNoPermission,
	ErrNotAnImage:              ErrStatusClient,
	ErrConflict:                ErrStatusConflict,
	ErrProductNotFound:         ErrStatusNotFound,
	ErrInvalidCategory:         ErrStatusClient,
	ErrEmptyCart:               ErrStatusClient,
	ErrOrderPersistence:        ErrStatusInternalServer,
}

func GetErrorStatusCode(err error) int {
	var stockErr *InsufficientStockError
	if errors.As(err, &stockErr) {
		return ErrStatusConflict
	}

	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
