package datasets

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DedupAndStats(t *testing.T) {
	raw := "Date,Quantity,Price,Sales\n" +
		"2024-01-05,2,10,20\n" +
		"2024-01-05,2,10,20\n" +
		"2024-01-20,3,10,30\n"

	dataset, err := Normalize([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, 3, dataset.OriginalCount)
	assert.Equal(t, 1, dataset.DuplicatesRemoved)
	assert.Len(t, dataset.Rows, 2)
	assert.Equal(t, []string{"date", "quantity", "price", "sales"}, dataset.Columns)
	assert.Equal(t, dataset.OriginalCount, len(dataset.Rows)+dataset.DuplicatesRemoved)

	first := dataset.Rows[0]
	assert.Equal(t, 2, first.Line)
	require.NotNil(t, first.Date)
	assert.True(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC).Equal(*first.Date))
	require.NotNil(t, first.Quantity)
	assert.Equal(t, int64(2), *first.Quantity)
	require.NotNil(t, first.Price)
	assert.True(t, decimal.NewFromInt(10).Equal(*first.Price))
	require.NotNil(t, first.Sales)
	assert.True(t, decimal.NewFromInt(20).Equal(*first.Sales))

	assert.Equal(t, 4, dataset.Rows[1].Line)
}

func TestNormalize_DedupIsExactMatchOnly(t *testing.T) {
	raw := "date,quantity,price,sales\n" +
		"2024-01-05,2,10,20\n" +
		"2024-01-05,2,10,21\n" +
		"2024-01-06,2,10,20\n" +
		"2024-01-05,3,10,20\n"

	dataset, err := Normalize([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, 0, dataset.DuplicatesRemoved)
	assert.Len(t, dataset.Rows, 4)
}

func TestNormalize_DedupComparesCoercedDates(t *testing.T) {
	raw := "date,sales\n" +
		"2024-01-05,20\n" +
		"2024-01-05 00:00:00,20\n" +
		"not-a-date,5\n" +
		"also-bad,5\n"

	dataset, err := Normalize([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, 4, dataset.OriginalCount)
	assert.Equal(t, 2, dataset.DuplicatesRemoved)
	require.Len(t, dataset.Rows, 2)
	assert.Equal(t, "2024-01-05", dataset.Rows[0].RawDate)
	assert.Nil(t, dataset.Rows[1].Date)
	assert.Equal(t, "not-a-date", dataset.Rows[1].RawDate)
}

func TestNormalize_HeaderNormalization(t *testing.T) {
	raw := "\xEF\xBB\xBF  DATE , Quantity,SALES ,Month,Region\n2024-03-01,1,5.5,2023-12,north\n"

	dataset, err := Normalize([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "quantity", "sales", "month", "region"}, dataset.Columns)
	require.Len(t, dataset.Rows, 1)
	assert.Nil(t, dataset.Rows[0].Price)
	assert.True(t, decimal.RequireFromString("5.5").Equal(*dataset.Rows[0].Sales))
}

func TestNormalize_InvalidDateBecomesSentinel(t *testing.T) {
	raw := "date,quantity\nbanana,1\n,2\n2024-02-10,3\n"

	dataset, err := Normalize([]byte(raw))
	require.NoError(t, err)
	require.Len(t, dataset.Rows, 3)

	assert.False(t, dataset.Rows[0].HasValidDate())
	assert.False(t, dataset.Rows[1].HasValidDate())
	assert.True(t, dataset.Rows[2].HasValidDate())
}

func TestNormalize_NumericCoercion(t *testing.T) {
	raw := "date,quantity,price,sales\n" +
		"2024-01-01,2.0,1.25,abc\n" +
		"2024-01-02,2.5,,3\n" +
		"2024-01-03,x,7,1e2\n"

	dataset, err := Normalize([]byte(raw))
	require.NoError(t, err)
	require.Len(t, dataset.Rows, 3)

	require.NotNil(t, dataset.Rows[0].Quantity)
	assert.Equal(t, int64(2), *dataset.Rows[0].Quantity)
	assert.True(t, decimal.RequireFromString("1.25").Equal(*dataset.Rows[0].Price))
	assert.Nil(t, dataset.Rows[0].Sales)

	assert.Nil(t, dataset.Rows[1].Quantity)
	assert.Nil(t, dataset.Rows[1].Price)

	assert.Nil(t, dataset.Rows[2].Quantity)
	assert.True(t, decimal.NewFromInt(100).Equal(*dataset.Rows[2].Sales))
}

func TestNormalize_ShortRowsArePadded(t *testing.T) {
	dataset, err := Normalize([]byte("date,quantity,price,sales\n2024-01-01,1\n"))
	require.NoError(t, err)
	require.Len(t, dataset.Rows, 1)

	assert.NotNil(t, dataset.Rows[0].Quantity)
	assert.Nil(t, dataset.Rows[0].Price)
	assert.Nil(t, dataset.Rows[0].Sales)
}

func TestNormalize_HeaderOnly(t *testing.T) {
	dataset, err := Normalize([]byte("date,quantity,price,sales\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, dataset.OriginalCount)
	assert.Equal(t, 0, dataset.DuplicatesRemoved)
	assert.NotNil(t, dataset.Rows)
	assert.Empty(t, dataset.Rows)
}

func TestNormalize_MissingDateColumn(t *testing.T) {
	_, err := Normalize([]byte("day,quantity\n2024-01-01,1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestNormalize_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "vazio", raw: []byte{}},
		{name: "só espaços", raw: []byte("  \n \n")},
		{name: "só BOM", raw: []byte("\xEF\xBB\xBF")},
		{name: "não utf-8", raw: []byte("date,sales\n2024-01-01,\xff\xfe\n")},
		{name: "coluna duplicada", raw: []byte("Date,date\n2024-01-01,2024-01-02\n")},
		{name: "linha maior que o cabeçalho", raw: []byte("date,sales\n2024-01-01,1,2\n")},
		{name: "aspas abertas", raw: []byte("date,sales\n\"2024-01-01,1\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestNormalize_LargeInputKeepsInvariant(t *testing.T) {
	var b strings.Builder
	b.WriteString("date,quantity,price,sales\n")
	for i := 0; i < 500; i++ {
		// cada linha aparece duas vezes
		line := time.Date(2024, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC).Format("2006-01-02") + ",1,1,1\n"
		b.WriteString(line)
		b.WriteString(line)
	}

	dataset, err := Normalize([]byte(b.String()))
	require.NoError(t, err)

	assert.Equal(t, 1000, dataset.OriginalCount)
	assert.Equal(t, dataset.OriginalCount, len(dataset.Rows)+dataset.DuplicatesRemoved)
	assert.GreaterOrEqual(t, dataset.DuplicatesRemoved, 500)
}
