package utils

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayout é o formato aceito nos filtros de data da API
const DateLayout = "2006-01-02"

// ParseDate interpreta YYYY-MM-DD como meia-noite em UTC; string vazia retorna nil sem erro
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid date %q", dateStr)
	}

	return &date, nil
}
