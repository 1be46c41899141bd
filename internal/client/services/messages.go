package services

import "github.com/dmitrijs2005/ngoreports/internal/client/client"

// Fallback texts shown when the server gives no usable error message.
const (
	msgUploadFailed      = "upload failed"
	msgUploadUnreachable = "failed to upload file, please try again"

	msgReportFailed      = "failed to submit report, please try again"
	msgReportUnreachable = "failed to submit report, please try again"

	msgDashboardFailed      = "failed to load dashboard data"
	msgDashboardUnreachable = "failed to load dashboard data, please try again"
)

// UploadErrorMessage is the user-facing text for an upload failure.
func UploadErrorMessage(err error) string {
	return client.UserMessage(err, msgUploadFailed, msgUploadUnreachable)
}

// ReportErrorMessage is the user-facing text for a report submission failure.
// Field errors from the server come out as one line per field.
func ReportErrorMessage(err error) string {
	return client.UserMessage(err, msgReportFailed, msgReportUnreachable)
}

// DashboardErrorMessage is the user-facing text for a dashboard failure.
func DashboardErrorMessage(err error) string {
	return client.UserMessage(err, msgDashboardFailed, msgDashboardUnreachable)
}
