package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	m, ok := ParseMonth("march")
	assert.True(t, ok)
	assert.Equal(t, Month(3), m)

	m, ok = ParseMonth("all")
	assert.True(t, ok)
	assert.Equal(t, AllMonths, m)

	_, ok = ParseMonth("july")
	assert.False(t, ok, "only the first six months can be selected")
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday("monday")
	assert.True(t, ok)
	assert.Equal(t, Weekday(0), d)

	d, ok = ParseWeekday("sunday")
	assert.True(t, ok)
	assert.Equal(t, Weekday(6), d)

	d, ok = ParseWeekday("all")
	assert.True(t, ok)
	assert.Equal(t, AllDays, d)

	_, ok = ParseWeekday("Monday")
	assert.False(t, ok)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "january", MonthName(1))
	assert.Equal(t, "june", MonthName(6))
	assert.Equal(t, "july", MonthName(7))
	assert.Equal(t, "", MonthName(13))
	assert.Equal(t, "all", AllMonths.String())
}

func TestMondayIndex(t *testing.T) {
	assert.Equal(t, 0, MondayIndex(time.Monday))
	assert.Equal(t, 6, MondayIndex(time.Sunday))
	assert.Equal(t, "sunday", WeekdayName(MondayIndex(time.Sunday)))
}

func TestTablesAreCopies(t *testing.T) {
	names := MonthNames()
	names[0] = "changed"
	assert.Equal(t, "january", MonthNames()[0])
	assert.Equal(t, "all", MonthNames()[6])

	cs := Cities()
	cs[0] = "changed"
	assert.True(t, IsCity("chicago"))
	assert.Len(t, WeekdayNames(), 8)
}
