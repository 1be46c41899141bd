package client

import (
	"context"

	"github.com/dmitrijs2005/ngoreports/internal/client/models"
)

// Client is the reporting API contract used by the services.
type Client interface {
	UploadCSV(ctx context.Context, file models.SelectedFile) (models.UploadResponse, error)
	JobStatus(ctx context.Context, jobID string) (models.UploadJob, error)
	SubmitReport(ctx context.Context, in models.ReportInput) (models.Report, bool, error)
	Dashboard(ctx context.Context, month string) (models.DashboardData, error)
}
