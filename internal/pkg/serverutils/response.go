package serverutils

// Envelope is the uniform JSON response wrapper for all endpoints.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Envelope[T] {
	return Envelope[T]{
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Envelope[any] {
	return Envelope[any]{
		Code:    code,
		Message: message,
	}
}
