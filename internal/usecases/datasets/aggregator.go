package datasets

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type monthBucket struct {
	sales    decimal.Decimal
	quantity int64
}

// AggregateByMonth agrupa pelo mês derivado da data (nunca pelo mês gravado)
// e devolve as séries ordenadas pelo rótulo YYYY-MM.
func AggregateByMonth(records []*domain.Record) *domain.MonthlySeries {
	buckets := make(map[string]*monthBucket)

	for _, rec := range records {
		if rec == nil {
			continue
		}

		label := domain.MonthOf(rec.Date)
		bucket, ok := buckets[label]
		if !ok {
			bucket = &monthBucket{sales: decimal.Zero}
			buckets[label] = bucket
		}

		bucket.sales = bucket.sales.Add(rec.Sales)
		bucket.quantity += rec.Quantity
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	series := &domain.MonthlySeries{
		Sales:    make([]domain.SeriesPoint, 0, len(labels)),
		Quantity: make([]domain.SeriesPoint, 0, len(labels)),
	}

	for _, label := range labels {
		bucket := buckets[label]
		series.Sales = append(series.Sales, domain.SeriesPoint{Label: label, Value: bucket.sales.InexactFloat64()})
		series.Quantity = append(series.Quantity, domain.SeriesPoint{Label: label, Value: float64(bucket.quantity)})
	}

	return series
}
