package datasets

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	columnDate     = "date"
	columnQuantity = "quantity"
	columnPrice    = "price"
	columnSales    = "sales"

	invalidDateKey = "\x00NaT"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normalize transforma os bytes do upload em candidatos a Record.
// Datas inválidas viram o sentinela nil em vez de derrubar o arquivo;
// linhas exatamente iguais (data comparada após a conversão) são descartadas.
func Normalize(raw []byte) (*domain.NormalizedDataset, error) {
	if !utf8.Valid(raw) {
		return nil, errors.Wrap(ErrMalformedInput, "arquivo não está em UTF-8")
	}

	raw = bytes.TrimPrefix(raw, utf8BOM)
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "arquivo vazio")
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}

	columns, index, err := normalizeColumns(header)
	if err != nil {
		return nil, err
	}

	dateIdx, ok := index[columnDate]
	if !ok {
		return nil, errors.Wrapf(ErrMissingColumn, "colunas recebidas: %s", strings.Join(columns, ", "))
	}

	dataset := &domain.NormalizedDataset{
		Rows:    make([]*domain.RecordCandidate, 0),
		Columns: columns,
	}
	seen := make(map[string]struct{})

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrMalformedInput, err.Error())
		}

		line, _ := reader.FieldPos(0)
		if len(record) > len(columns) {
			return nil, errors.Wrapf(ErrMalformedInput, "linha %d tem %d campos, cabeçalho tem %d", line, len(record), len(columns))
		}
		for len(record) < len(columns) {
			record = append(record, "")
		}

		dataset.OriginalCount++

		candidate := &domain.RecordCandidate{
			Line:    line,
			RawDate: record[dateIdx],
			Date:    utils.ParseDate(record[dateIdx]),
		}

		key := rowKey(record, dateIdx, candidate.Date)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if idx, ok := index[columnQuantity]; ok {
			candidate.Quantity = parseQuantity(record[idx])
		}
		if idx, ok := index[columnPrice]; ok {
			candidate.Price = parseDecimal(record[idx])
		}
		if idx, ok := index[columnSales]; ok {
			candidate.Sales = parseDecimal(record[idx])
		}

		dataset.Rows = append(dataset.Rows, candidate)
	}

	dataset.DuplicatesRemoved = dataset.OriginalCount - len(dataset.Rows)

	return dataset, nil
}

func normalizeColumns(header []string) ([]string, map[string]int, error) {
	columns := make([]string, len(header))
	index := make(map[string]int, len(header))

	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			normalized = fmt.Sprintf("unnamed: %d", i)
		}

		if _, exists := index[normalized]; exists {
			return nil, nil, errors.Wrapf(ErrMalformedInput, "coluna %q repetida após normalização", normalized)
		}

		columns[i] = normalized
		index[normalized] = i
	}

	return columns, index, nil
}

// parseQuantity aceita apenas valores inteiros ("2", "2.0")
func parseQuantity(value string) *int64 {
	d := parseDecimal(value)
	if d == nil || !d.IsInteger() {
		return nil
	}

	q := d.IntPart()
	if !decimal.NewFromInt(q).Equal(*d) {
		return nil
	}

	return &q
}

func parseDecimal(value string) *decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil
	}

	return &d
}

func rowKey(record []string, dateIdx int, date *time.Time) string {
	var b strings.Builder
	for i, cell := range record {
		if i == dateIdx {
			if date == nil {
				cell = invalidDateKey
			} else {
				cell = date.Format(time.RFC3339Nano)
			}
		}
		b.WriteString(strconv.Itoa(len(cell)))
		b.WriteByte(':')
		b.WriteString(cell)
	}
	return b.String()
}
