package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyIDRequired = errors.New("company ID is required")
	ErrMetricsNotFound   = errors.New("no metrics snapshot found for company")
	ErrReportNotFound    = errors.New("no insight report found for company")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// InsightError carrega o código de API e a empresa envolvida
type InsightError struct {
	Err       error
	Code      string
	CompanyID string
	Details   string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func (e *InsightError) ErrorCode() string {
	return e.Code
}

func NewInsightError(err error, code string, companyID string, details string) *InsightError {
	return &InsightError{
		Err:       err,
		Code:      code,
		CompanyID: companyID,
		Details:   details,
	}
}
