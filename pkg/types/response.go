// Package types defines the JSON envelopes every WasteTrack endpoint speaks:
// successes wrap their payload under "data", failures carry a code, a message
// safe to show citizens, and optional structured detail.
package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success wraps a payload in the standard envelope.
func Success(data any) SuccessEnvelope {
	return SuccessEnvelope{Data: data}
}

// Failure builds the error envelope; details may be nil.
func Failure(code, message string, details any) ErrorEnvelope {
	return ErrorEnvelope{Error: APIError{Code: code, Message: message, Details: details}}
}
