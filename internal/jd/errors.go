package jd

import "fmt"

// TokenizeError represents a failure to tokenize input text. This is the only
// hard failure the summarizer can produce; it indicates non-text input that
// should have been rejected upstream.
type TokenizeError struct {
	Message string
	Cause   error
}

func (e *TokenizeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tokenize error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("tokenize error: %s", e.Message)
}

func (e *TokenizeError) Unwrap() error {
	return e.Cause
}
