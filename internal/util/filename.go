package util

import (
	"fmt"
	"time"
)

// ReportFileName returns the download name for a report generated on t,
// e.g. budget-report-2026-03-14.pdf
func ReportFileName(t time.Time, ext string) string {
	return fmt.Sprintf("budget-report-%s.%s", t.Format("2006-01-02"), ext)
}
