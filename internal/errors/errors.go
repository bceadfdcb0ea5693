package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput is returned when required fields are missing or malformed.
	ErrInvalidInput = errors.New("invalid input data")
	// ErrZeroRate is returned when a computation would divide by a zero rate.
	ErrZeroRate = errors.New("agreed rate cannot be zero")
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrNoTransactions is returned when the transaction list is empty.
	ErrNoTransactions = errors.New("no transactions found")
	// ErrFournisseurNotFound is returned when a supplier is not found.
	ErrFournisseurNotFound = errors.New("fournisseur not found")
	// ErrFournisseurNameTaken is returned when a supplier name already exists.
	ErrFournisseurNameTaken = errors.New("fournisseur name already in use")
	// ErrBeneficiaireNotFound is returned when a beneficiary is not found.
	ErrBeneficiaireNotFound = errors.New("beneficiaire not found")
	// ErrBeneficiaireNameTaken is returned when a beneficiary name already exists.
	ErrBeneficiaireNameTaken = errors.New("beneficiaire name already in use")
	// ErrNoBeneficiaires is returned when the beneficiary list is empty.
	ErrNoBeneficiaires = errors.New("no beneficiaires found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrInvalidInput:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case ErrZeroRate:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ZERO_RATE")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrTransactionNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_NOT_FOUND")
	case ErrNoTransactions:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_TRANSACTIONS")
	case ErrFournisseurNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "FOURNISSEUR_NOT_FOUND")
	case ErrFournisseurNameTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "FOURNISSEUR_NAME_TAKEN")
	case ErrBeneficiaireNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "BENEFICIAIRE_NOT_FOUND")
	case ErrBeneficiaireNameTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "BENEFICIAIRE_NAME_TAKEN")
	case ErrNoBeneficiaires:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_BENEFICIAIRES")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
