package serverutils

// BaseResponse is the envelope for simple success payloads.
type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

// ErrorBody is the structured error object returned on every failure.
type ErrorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func ErrorResponse(code int, kind ErrorKind, message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Kind:    string(kind),
		Message: message,
	}
}
