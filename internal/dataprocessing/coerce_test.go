package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		wantOK   bool
		wantYear int
	}{
		{name: "iso date", cell: "2020-06-15", wantOK: true, wantYear: 2020},
		{name: "iso datetime", cell: "2019-03-01 00:00:00", wantOK: true, wantYear: 2019},
		{name: "slash date", cell: "2021/07/09", wantOK: true, wantYear: 2021},
		{name: "us date", cell: "12/31/2018", wantOK: true, wantYear: 2018},
		{name: "month name", cell: "05-Jan-2022", wantOK: true, wantYear: 2022},
		{name: "surrounding whitespace", cell: "  2017-01-01  ", wantOK: true, wantYear: 2017},
		{name: "empty", cell: "", wantOK: false},
		{name: "garbage", cell: "not a date", wantOK: false},
		{name: "partial", cell: "2020-13-45", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.cell)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantYear, got.Year())
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		cell   string
		wantOK bool
		want   float64
	}{
		{name: "plain", cell: "1000000000", wantOK: true, want: 1e9},
		{name: "decimal", cell: "1234.5", wantOK: true, want: 1234.5},
		{name: "thousands separators", cell: "1,000,000", wantOK: true, want: 1e6},
		{name: "whitespace", cell: " 42 ", wantOK: true, want: 42},
		{name: "negative", cell: "-5", wantOK: true, want: -5},
		{name: "empty", cell: "", wantOK: false},
		{name: "text", cell: "n/a", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.cell)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
