package utils

import (
	"math"
	"strconv"
	"time"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with base-1024 units, rounded to
// two decimal places with trailing zeros trimmed: 0 -> "0 Bytes",
// 1024 -> "1 KB", 1536 -> "1.5 KB".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	value := float64(bytes)
	i := 0
	for value >= 1024 && i < len(sizeUnits)-1 {
		value /= 1024
		i++
	}
	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}

// FormatDate renders a timestamp as dd/mm/yyyy hh:mm, the fixed display
// format of the listing view, independent of server locale.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
