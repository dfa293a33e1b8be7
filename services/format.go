package services

import (
	"fmt"
	"strconv"
	"time"
)

var spanishMonths = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatAmount formats a monetary value with exactly 2 decimal places.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatQty formats a quantity without trailing zeros: whole values render
// as integers ("3"), fractional values keep their decimals ("2.5").
func FormatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// FormatSpanishLongDate renders t in Spanish long form, e.g.
// "21 de junio del 2025". An explicit month table is used instead of the
// process time locale so concurrent renders never fight over global state.
func FormatSpanishLongDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s del %d", t.Day(), spanishMonths[int(t.Month())-1], t.Year())
}

// FormatTimestamp renders the render-time stamp shown in the page footer.
func FormatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

// FormatPhone groups a phone number's characters in blocks of three,
// "987654321" → "987 654 321". Offsets follow the printed letterhead layout.
func FormatPhone(phone string) string {
	var out []byte
	for i := 0; i < len(phone); i++ {
		if i == 3 || i == 6 || i == 9 {
			out = append(out, ' ')
		}
		out = append(out, phone[i])
	}
	return string(out)
}

// LimaTime returns now in the shop's timezone. The lookup falls back to the
// runtime default when the tz database lacks the zone.
func LimaTime(now time.Time) time.Time {
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		return now
	}
	return now.In(loc)
}
