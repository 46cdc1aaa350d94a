package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Date tests --

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)

	for _, bad := range []string{"2023-02-29", "2024-13-01", "2024-1-01", "24-01-01", " 2024-01-01", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDate_StringIsZeroPadded(t *testing.T) {
	assert.Equal(t, "2024-01-09", NewDate(2024, time.January, 9).String())
	assert.Equal(t, "0999-03-04", NewDate(999, time.March, 4).String())
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.January, 9)
	b := NewDate(2024, time.January, 31)
	c := NewDate(2023, time.December, 31)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, c.Before(a))
	assert.Equal(t, 0, a.Compare(NewDate(2024, time.January, 9)))
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, 29, LastDayOfMonth(2024, time.February))
	assert.Equal(t, 28, LastDayOfMonth(2023, time.February))
	assert.Equal(t, 30, LastDayOfMonth(2024, time.November))
	assert.Equal(t, 31, LastDayOfMonth(2024, time.December))
}

func TestDateOf_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	instant := time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, NewDate(2024, time.June, 15), DateOf(instant))
	assert.Equal(t, NewDate(2024, time.June, 16), DateOf(instant.In(loc)))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-05-06"))
	assert.Equal(t, NewDate(2024, time.May, 6), d)

	require.NoError(t, d.Scan([]byte("2024-05-07T00:00:00Z")))
	assert.Equal(t, NewDate(2024, time.May, 7), d)

	require.NoError(t, d.Scan(time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2024, time.May, 8), d)

	assert.Error(t, d.Scan(42))
}
