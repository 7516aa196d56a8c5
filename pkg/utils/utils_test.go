package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "iso", input: "2024-01-05", expected: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "iso com espaços", input: "  2024-01-05 ", expected: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "iso com hora", input: "2024-01-05 10:30:00", expected: time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC)},
		{name: "rfc3339", input: "2024-02-01T08:00:00Z", expected: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)},
		{name: "barras mês primeiro", input: "03/15/2024", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "barras sem zero", input: "3/5/2024", expected: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "ano primeiro com barras", input: "2024/03/15", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "compacto", input: "20240315", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := ParseDate(tt.input)
			require.NotNil(t, date)
			assert.True(t, tt.expected.Equal(*date), "esperado %s, obtido %s", tt.expected, date)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date", "2024-13-45", "31/31/2024"} {
		assert.Nil(t, ParseDate(input), input)
	}
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, generationIDSize)
	assert.NotEqual(t, first, second)
	assert.Regexp(t, `^[A-Za-z0-9]+$`, first)
}
