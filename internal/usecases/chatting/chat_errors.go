package chatting

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyIDRequired = errors.New("company ID is required")
	ErrDatabaseOperation = errors.New("database operation error")
)

type ChatError struct {
	Err       error
	Code      string
	SessionID string
	Details   string
}

func (e *ChatError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

func (e *ChatError) ErrorCode() string {
	return e.Code
}

func NewChatError(err error, code string, sessionID string, details string) *ChatError {
	return &ChatError{
		Err:       err,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
