package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/olekukonko/tablewriter"
)

// msgProcessingFailed stands in for a failed job without an error message.
const msgProcessingFailed = "Processing failed"

// FormatJob renders a job snapshot as one or two lines of text:
//
//	status: processing 4/10 rows (40%)
//	completed: 9 successful, 1 failed
func FormatJob(job models.UploadJob) string {
	var s string
	switch job.Status {
	case models.JobStatusCompleted, models.JobStatusFailed:
		s = fmt.Sprintf("%s: %d successful, %d failed", job.Status, job.SuccessfulRows, job.FailedRows)
	case models.JobStatusProcessing:
		s = fmt.Sprintf("status: processing %d/%d rows (%.0f%%)", job.ProcessedRows, job.TotalRows, job.Progress())
	default:
		s = "status: " + string(job.Status)
	}
	switch {
	case job.ErrorMessage != "":
		s += "\n" + job.ErrorMessage
	case job.Status == models.JobStatusFailed:
		s += "\n" + msgProcessingFailed
	}
	return s
}

// renderDashboard writes the month totals followed by a table of reports.
func renderDashboard(w io.Writer, data models.DashboardData) {
	fmt.Fprintf(w, "month: %s\n", data.Month)
	fmt.Fprintf(w, "NGOs reporting: %d\n", data.TotalNGOsReporting)
	fmt.Fprintf(w, "people helped: %d\n", data.TotalPeopleHelped)
	fmt.Fprintf(w, "events conducted: %d\n", data.TotalEventsConducted)
	fmt.Fprintf(w, "funds utilized: %s\n", data.TotalFundsUtilized)

	if len(data.Reports) == 0 {
		fmt.Fprintln(w, "no reports for this month")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NGO", "People helped", "Events", "Funds utilized"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	for _, r := range data.Reports {
		table.Append([]string{
			r.NGOID,
			strconv.Itoa(r.PeopleHelped),
			strconv.Itoa(r.EventsConducted),
			r.FundsUtilized.String(),
		})
	}
	table.Render()
}
