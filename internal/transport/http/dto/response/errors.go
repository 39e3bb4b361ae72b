package response

const (
	errUnauthorized   = "unauthorized"
	errNotFound       = "not found"
	errConflict       = "already exists"
	errInvalidRequest = "invalid request body"
	errInternal       = "internal server error"
)

// Unauthorized одинаковый ответ на любой отказ в доступе
func Unauthorized() ErrorResponse {
	return ErrorResponse{Status: statusError, Error: errUnauthorized}
}

func NotFound() ErrorResponse {
	return ErrorResponse{Status: statusError, Error: errNotFound}
}

func Conflict() ErrorResponse {
	return ErrorResponse{Status: statusError, Error: errConflict}
}

func InvalidRequest(details string) ErrorResponse {
	return ErrorResponseWithDetails(errInvalidRequest, details)
}

func Internal() ErrorResponse {
	return ErrorResponse{Status: statusError, Error: errInternal}
}
