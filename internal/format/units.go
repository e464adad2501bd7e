// Package format renders byte counts and percentages for operator output.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders grouped numbers ("1,228,800") for operator-facing output.
var printer = message.NewPrinter(language.English)

const (
	KiB = 1024
	MiB = 1024 * KiB
)

// Count formats n with thousands separators.
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// Bytes formats a byte count in the largest unit that keeps it readable.
//
//	Bytes(512)       = "512 B"
//	Bytes(2048)      = "2 KiB"
//	Bytes(1228800)   = "1,200 KiB"
//	Bytes(3*MiB)     = "3 MiB"
func Bytes(n int64) string {
	switch {
	case n >= MiB && n%MiB == 0:
		return printer.Sprintf("%d MiB", n/MiB)
	case n >= KiB && n%KiB == 0:
		return printer.Sprintf("%d KiB", n/KiB)
	case n >= 10*KiB:
		return printer.Sprintf("%.1f KiB", float64(n)/KiB)
	default:
		return printer.Sprintf("%d B", n)
	}
}

// Percent formats part/whole as a percentage with one decimal.
// A zero whole yields "0.0%".
func Percent(part, whole int64) string {
	if whole == 0 {
		return "0.0%"
	}
	return printer.Sprintf("%.1f%%", float64(part)*100/float64(whole))
}
