package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code      string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details   string `json:"details,omitempty"` // Detailed error information (optional)
	Retryable bool   `json:"retryable"`         // Whether the caller may usefully retry
}

// Response defines the unified envelope the error middleware writes.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
