package models

// ErrorCode representa el código de error
type ErrorCode string

const (
	ErrorCodeInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	ErrorCodeValidation        ErrorCode = "VALIDATION_ERROR"
	ErrorCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrorCodeRateLimited       ErrorCode = "RATE_LIMITED"
	ErrorCodeInternal          ErrorCode = "INTERNAL"
)

// ErrorDetail representa un detalle específico del error
type ErrorDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ErrorInfo representa la información del error
type ErrorInfo struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorResponse representa la respuesta de error estandarizada
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// APIError implementa la interfaz error para uso en la API
type APIError struct {
	ErrorResponse
}

// Error implementa la interfaz error
func (e APIError) Error() string {
	return e.ErrorResponse.Error.Message
}

// NewAPIError crea un nuevo error de API
func NewAPIError(errResp ErrorResponse) error {
	return &APIError{ErrorResponse: errResp}
}

// NewErrorResponse crea una nueva respuesta de error
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(code),
			Message: message,
		},
	}
}

// NewInvalidIdentifierError crea un error por identificador mal formado
func NewInvalidIdentifierError(field string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(ErrorCodeInvalidIdentifier),
			Message: "Invalid identifier",
			Details: []ErrorDetail{
				{Field: field, Issue: "Must be a valid UUID"},
			},
		},
	}
}

// NewValidationError crea un error de validación con detalles
func NewValidationError(message string, details []ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(ErrorCodeValidation),
			Message: message,
			Details: details,
		},
	}
}

// NewNotFoundError crea un error de recurso no encontrado
func NewNotFoundError(message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(ErrorCodeNotFound),
			Message: message,
		},
	}
}

// NewRateLimitedError crea un error de rate limiting
func NewRateLimitedError(message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(ErrorCodeRateLimited),
			Message: message,
		},
	}
}

// NewInternalError crea un error interno del servidor
func NewInternalError(message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(ErrorCodeInternal),
			Message: message,
		},
	}
}
