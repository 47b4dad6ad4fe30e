package dto

// BaseError is the envelope for every error response.
// Code is machine-oriented snake_case, Message is human readable,
// Details carries extra context, Fields lists per-field validation failures.
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// Semantic aliases for swagger @Failure annotations. All share BaseError's JSON shape.

// ValidationErrorResponse 400, code "validation_error"
type ValidationErrorResponse BaseError

// BusinessErrorResponse 400, code "business_rule"
type BusinessErrorResponse BaseError

// UnauthorizedErrorResponse 401, code "unauthorized"
type UnauthorizedErrorResponse BaseError

// ForbiddenErrorResponse 403, code "forbidden"
type ForbiddenErrorResponse BaseError

// NotFoundErrorResponse 404, code "not_found"
type NotFoundErrorResponse BaseError

// ConflictErrorResponse 409, code "conflict"
type ConflictErrorResponse BaseError

// UnprocessableErrorResponse 422, code "unprocessable"
type UnprocessableErrorResponse BaseError

// InternalErrorResponse 500, code "internal_error"
type InternalErrorResponse BaseError

func NewValidationError(msg string, fields []FieldError) ValidationErrorResponse {
	return ValidationErrorResponse(BaseError{Code: "validation_error", Message: msg, Fields: fields})
}
func NewBusinessError(msg string) BusinessErrorResponse {
	return BusinessErrorResponse(BaseError{Code: "business_rule", Message: msg})
}
func NewUnauthorizedError(msg string) UnauthorizedErrorResponse {
	return UnauthorizedErrorResponse(BaseError{Code: "unauthorized", Message: msg})
}
func NewForbiddenError(msg string) ForbiddenErrorResponse {
	return ForbiddenErrorResponse(BaseError{Code: "forbidden", Message: msg})
}
func NewNotFoundError(msg string) NotFoundErrorResponse {
	return NotFoundErrorResponse(BaseError{Code: "not_found", Message: msg})
}
func NewConflictError(msg string) ConflictErrorResponse {
	return ConflictErrorResponse(BaseError{Code: "conflict", Message: msg})
}
func NewUnprocessableError(msg string) UnprocessableErrorResponse {
	return UnprocessableErrorResponse(BaseError{Code: "unprocessable", Message: msg})
}
func NewInternalError(details string) InternalErrorResponse {
	return InternalErrorResponse(BaseError{Code: "internal_error", Message: "internal server error", Details: details})
}

// StockErrorResponse 400 when a product cannot cover the requested quantity.
type StockErrorResponse struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	ProductName    string `json:"product_name"`
	AvailableStock int    `json:"available_stock"`
}

// CouponErrorResponse 400 when a coupon cannot be applied.
type CouponErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

// ReorderErrorResponse 400 when some items can no longer be bought.
type ReorderErrorResponse struct {
	Code               string   `json:"code"`
	Message            string   `json:"message"`
	OutOfStockProducts []string `json:"out_of_stock_products"`
}
