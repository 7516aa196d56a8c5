package utils

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Formatos aceitos além dos que o cast já reconhece
var extraDateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"01/02/2006 15:04:05",
	"2006/01/02",
	"2006/1/2",
	"2006/01/02 15:04:05",
	"20060102",
}

// ParseDate converte a data de forma permissiva. Retorna nil quando o valor
// está vazio ou não é reconhecido.
func ParseDate(dateStr string) *time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil
	}

	if date, err := cast.ToTimeE(dateStr); err == nil {
		return &date
	}

	for _, layout := range extraDateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return &date
		}
	}

	return nil
}
