package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rafaelssenna/sol-client/internal/adapter"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"7.5", "R$ 7,50"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"1000", "R$ 1.000,00"},
		{"-42.10", "-R$ 42,10"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatMoneyPtr(t *testing.T) {
	assert.Equal(t, "-", formatMoneyPtr(nil))

	v := decimal.RequireFromString("99.90")
	assert.Equal(t, "R$ 99,90", formatMoneyPtr(&v))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", formatDate(time.Time{}))

	d := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "07/03/2025", formatDate(d))
	assert.Equal(t, "07/03/2025 14:30", formatDateTime(d))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", formatPercent(12.5))
	assert.Equal(t, "0.0%", formatPercent(0))
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "-", valueOrDash("   "))
	assert.Equal(t, "SP", valueOrDash("SP"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "exactly-10", fitText("exactly-10", 10))
	assert.Equal(t, "a long ...", fitText("a long description", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "whatever", fitText("whatever", 0))
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))

	assert.Equal(t, "File is too large to upload",
		humanizeError(fmt.Errorf("%w: 20971520 bytes, limit 10485760", adapter.ErrFileTooLarge)))

	assert.Equal(t, "Network is down or the server is unreachable",
		humanizeError(errors.New(`Post "http://localhost:8000/api/items": dial tcp 127.0.0.1:8000: connection refused`)))

	assert.Equal(t, "not found: item 9 does not exist",
		humanizeError(fmt.Errorf("%w: item 9 does not exist", adapter.ErrNotFound)))
}
