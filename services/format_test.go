package services

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1234.5, "1234.50"},
		{0.005, "0.01"},
		{99.999, "100.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{2.5, "2.5"},
		{0, "0"},
		{10.25, "10.25"},
	}
	for _, tt := range tests {
		if got := FormatQty(tt.in); got != tt.want {
			t.Errorf("FormatQty(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSpanishLongDate(t *testing.T) {
	d := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	if got := FormatSpanishLongDate(d); got != "21 de junio del 2025" {
		t.Errorf("FormatSpanishLongDate = %q", got)
	}

	d = time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)
	if got := FormatSpanishLongDate(d); got != "03 de enero del 2026" {
		t.Errorf("FormatSpanishLongDate = %q", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	d := time.Date(2025, time.June, 21, 14, 30, 5, 0, time.UTC)
	if got := FormatTimestamp(d); got != "21/06/2025 14:30:05" {
		t.Errorf("FormatTimestamp = %q", got)
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"987654321", "987 654 321"},
		{"01712345", "017 123 45"},
		{"12", "12"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatPhone(tt.in); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
