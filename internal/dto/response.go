package dto

import "time"

// Envelope is the uniform response body shared by every endpoint.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func OK(message string, data interface{}) Envelope {
	return Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func Fail(message string, errs interface{}) Envelope {
	return Envelope{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
