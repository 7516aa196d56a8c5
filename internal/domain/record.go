package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const MonthLayout = "2006-01"

// Record é um ponto de venda persistido. Month é sempre derivado de Date.
type Record struct {
	ID           int64
	GenerationID string
	Date         time.Time
	Month        string
	Quantity     int64
	Price        decimal.Decimal
	Sales        decimal.Decimal
	CreatedAt    time.Time
}

func MonthOf(t time.Time) string {
	return t.Format(MonthLayout)
}

// RecordCandidate é uma linha normalizada do CSV ainda não validada.
// Ponteiros nil indicam coluna ausente ou valor não coercível; Date nil é o
// sentinela de data inválida.
type RecordCandidate struct {
	Line     int
	RawDate  string
	Date     *time.Time
	Quantity *int64
	Price    *decimal.Decimal
	Sales    *decimal.Decimal
}

func (c *RecordCandidate) HasValidDate() bool {
	return c.Date != nil
}
