package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Code          string `json:"code,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// ErrorKind classifies domain failures for transport mapping.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindConflict
	KindNotFound
)

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeInvalidStock      = "INVALID_STOCK"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeDuplicateProduct  = "DUPLICATE_PRODUCT"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeCategoryNotFound  = "CATEGORY_NOT_FOUND"
	ErrCodeInvalidID         = "INVALID_ID"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business rule failure. Message is user-facing and stable.
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewValidationError creates a domain error for malformed or out-of-range input.
func NewValidationError(code, message string) *DomainError {
	return &DomainError{Kind: KindValidation, Code: code, Message: message}
}

// NewConflictError creates a domain error for uniqueness violations.
func NewConflictError(code, message string) *DomainError {
	return &DomainError{Kind: KindConflict, Code: code, Message: message}
}

// NewNotFoundError creates a domain error for lookups that yield nothing.
func NewNotFoundError(code, message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

// IsKind reports whether err wraps a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind == kind
	}
	return false
}

// Common domain errors
var (
	ErrMissingFields     = NewValidationError(ErrCodeMissingField, "El producto debe tener id, nombre, precio y categoría")
	ErrDuplicateProduct  = NewConflictError(ErrCodeDuplicateProduct, "Ya existe un producto con este ID")
	ErrInvalidPrice      = NewValidationError(ErrCodeInvalidPrice, "El precio debe ser mayor que cero")
	ErrNegativeStock     = NewValidationError(ErrCodeInvalidStock, "El stock no puede ser negativo")
	ErrStockOverflow     = NewValidationError(ErrCodeInvalidStock, "El stock excede el máximo permitido")
	ErrInsufficientStock = NewValidationError(ErrCodeInsufficientStock, "No hay suficiente stock disponible")
	ErrProductNotFound   = NewNotFoundError(ErrCodeProductNotFound, "Producto no encontrado")
	ErrCategoryNotFound  = NewNotFoundError(ErrCodeCategoryNotFound, "No se encontraron productos en esta categoría")
)
