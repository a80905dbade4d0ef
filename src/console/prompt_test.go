package console

import (
	"BikeShare/src/config"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), NewPrinter(out)), out
}

func TestGetCityNormalizesInput(t *testing.T) {
	p, _ := newTestPrompter("  Chicago \n")
	city, err := p.GetCity()
	require.NoError(t, err)
	assert.Equal(t, "chicago", city)
}

func TestGetCityRepromptsUntilValid(t *testing.T) {
	p, out := newTestPrompter("boston\n\nNEW YORK CITY\n")
	city, err := p.GetCity()
	require.NoError(t, err)
	assert.Equal(t, "new york city", city)
	assert.Equal(t, 3, strings.Count(out.String(), "Enter the name of the city"))
}

func TestGetMonth(t *testing.T) {
	tests := []struct {
		input string
		want  config.Month
	}{
		{"january\n", 1},
		{"June\n", 6},
		{"july\nmarch\n", 3},
		{" ALL\n", config.AllMonths},
	}
	for _, tt := range tests {
		p, _ := newTestPrompter(tt.input)
		m, err := p.GetMonth()
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, m, tt.input)
	}
}

func TestGetDay(t *testing.T) {
	tests := []struct {
		input string
		want  config.Weekday
	}{
		{"monday\n", 0},
		{"Sunday\n", 6},
		{"mon\nfriday\n", 4},
		{"all\n", config.AllDays},
	}
	for _, tt := range tests {
		p, _ := newTestPrompter(tt.input)
		d, err := p.GetDay()
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, d, tt.input)
	}
}

func TestAskReturnsEOF(t *testing.T) {
	p, _ := newTestPrompter("")
	_, err := p.Ask("> ")
	assert.ErrorIs(t, err, io.EOF)

	p, _ = newTestPrompter("rome\n")
	_, err = p.GetCity()
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetFilters(t *testing.T) {
	p, out := newTestPrompter("washington\nfebruary\nsaturday\n")
	f, err := p.GetFilters()
	require.NoError(t, err)

	assert.Equal(t, "washington", f.City)
	assert.Equal(t, config.Month(2), f.Month)
	assert.Equal(t, config.Weekday(5), f.Day)

	got := out.String()
	assert.Contains(t, got, "Hello! Let's explore some US bikeshare data!")
	assert.Contains(t, got, "CITIES")
	assert.Contains(t, got, "1. Chicago")
	assert.Contains(t, got, "3. Washington")
	assert.Contains(t, got, "6. June")
	assert.Contains(t, got, "a. all")
	assert.Contains(t, got, "7. Sunday")
	assert.Contains(t, got, strings.Repeat("=", 60))
}

func TestMenuItem(t *testing.T) {
	items := []string{"january", "february", config.All}
	assert.Equal(t, "1. January", menuItem(items, 0))
	assert.Equal(t, "a. all", menuItem(items, 2))
	assert.Equal(t, " ", menuItem(items, 3))
}

func TestPrinterPadding(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrinter(out)

	p.Right("[This took %.3f seconds.]", 0.5)
	line := strings.TrimSuffix(out.String(), "\n")
	assert.Equal(t, 50, len(line))
	assert.True(t, strings.HasSuffix(line, "[This took 0.500 seconds.]"))

	out.Reset()
	long := strings.Repeat("x", 90)
	p.Line("%s", long)
	assert.Equal(t, long+"\n", out.String())
}
