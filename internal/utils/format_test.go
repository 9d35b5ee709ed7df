package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCNIC(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"42101", "42101"},
		{"421011", "42101-1"},
		{"421011234567", "42101-1234567"},
		{"4210112345678", "42101-1234567-8"},
		{"42101-1234567-8", "42101-1234567-8"},
		{"42101 1234567 8", "42101-1234567-8"},
		{"abc42101def1234567gh8", "42101-1234567-8"},
		{"42101123456789999", "42101-1234567-8"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatCNIC(c.in), "input %q", c.in)
	}
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2026-09-01", "14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC), got)
}

func TestCombineDateTimeInvalid(t *testing.T) {
	_, err := CombineDateTime("01/09/2026", "14:30")
	assert.Error(t, err)

	_, err = CombineDateTime("2026-09-01", "2pm")
	assert.Error(t, err)
}
