package cli

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatJob(t *testing.T) {
	tests := []struct {
		name string
		job  models.UploadJob
		want string
	}{
		{"pending", models.PendingJob("J1"), "status: pending"},
		{"processing", models.UploadJob{Status: models.JobStatusProcessing, TotalRows: 10, ProcessedRows: 4},
			"status: processing 4/10 rows (40%)"},
		{"processing unknown total", models.UploadJob{Status: models.JobStatusProcessing},
			"status: processing 0/0 rows (0%)"},
		{"completed", models.UploadJob{Status: models.JobStatusCompleted, SuccessfulRows: 9, FailedRows: 1},
			"completed: 9 successful, 1 failed"},
		{"completed with row errors", models.UploadJob{Status: models.JobStatusCompleted, SuccessfulRows: 1, FailedRows: 1,
			ErrorMessage: "Row 3: Missing fields: month"},
			"completed: 1 successful, 1 failed\nRow 3: Missing fields: month"},
		{"failed", models.UploadJob{Status: models.JobStatusFailed, ErrorMessage: "Processing failed: bad header"},
			"failed: 0 successful, 0 failed\nProcessing failed: bad header"},
		{"failed without message", models.UploadJob{Status: models.JobStatusFailed, FailedRows: 2},
			"failed: 0 successful, 2 failed\nProcessing failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatJob(tt.job))
		})
	}
}

func TestRenderDashboard(t *testing.T) {
	var buf bytes.Buffer
	renderDashboard(&buf, models.DashboardData{
		Month:                "2024-01",
		TotalNGOsReporting:   2,
		TotalPeopleHelped:    300,
		TotalEventsConducted: 9,
		TotalFundsUtilized:   12500,
		Reports: []models.Report{
			{NGOID: "ngo-1", PeopleHelped: 120, EventsConducted: 4, FundsUtilized: 5000},
			{NGOID: "ngo-2", PeopleHelped: 180, EventsConducted: 5, FundsUtilized: 7500},
		},
	})

	got := buf.String()
	assert.Contains(t, got, "NGOs reporting: 2\n")
	assert.Contains(t, got, "people helped: 300\n")
	assert.Contains(t, got, "funds utilized: 12500.00\n")
	assert.Contains(t, got, "People helped")
	assert.Contains(t, got, "ngo-1")
	assert.Contains(t, got, "7500.00")
	assert.NotContains(t, got, "no reports")
}
