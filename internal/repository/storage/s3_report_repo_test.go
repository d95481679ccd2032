package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReportObjectPath(t *testing.T) {
	id := uuid.MustParse("0192f1a4-7b3c-7def-8abc-1234567890ab")
	at := time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)

	got := ReportObjectPath(at, id, "budget-report-2026-03-07.pdf")

	assert.Equal(t, "reports/2026/03/0192f1a4-7b3c-7def-8abc-1234567890ab-budget-report-2026-03-07.pdf", got)
}

func TestReportObjectPath_StripsDirectories(t *testing.T) {
	id := uuid.MustParse("0192f1a4-7b3c-7def-8abc-1234567890ab")
	at := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)

	got := ReportObjectPath(at, id, "../../etc/budget.xlsx")

	assert.Equal(t, "reports/2026/12/0192f1a4-7b3c-7def-8abc-1234567890ab-budget.xlsx", got)
}
