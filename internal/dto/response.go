package dto

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// NewResponse builds a success/failure envelope; a nil data becomes an empty
// object so clients always see the same shape.
func NewResponse(success bool, message string, data any) Response {
	if data == nil {
		data = map[string]any{}
	}
	return Response{Success: success, Message: message, Data: data}
}

// NewErrorResponse builds a failure envelope with empty data.
func NewErrorResponse(message string) Response {
	return NewResponse(false, message, nil)
}
