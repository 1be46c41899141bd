package models

// JobStatus is the server-side processing state of an upload job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether no further transitions can occur.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusCompleted, JobStatusFailed:
		return true
	}
	return false
}

// UploadJob is a snapshot of the server-side processing of one uploaded file.
type UploadJob struct {
	JobID          string    `json:"job_id"`
	Status         JobStatus `json:"status"`
	TotalRows      int       `json:"total_rows"`
	ProcessedRows  int       `json:"processed_rows"`
	SuccessfulRows int       `json:"successful_rows"`
	FailedRows     int       `json:"failed_rows"`
	ErrorMessage   string    `json:"error_message,omitempty"`
}

// Progress returns processed/total as a percentage, or 0 when the total is
// not known yet.
func (j UploadJob) Progress() float64 {
	if j.TotalRows <= 0 {
		return 0
	}
	return float64(j.ProcessedRows) / float64(j.TotalRows) * 100
}

// PendingJob is the snapshot synthesized for a job the server has only
// acknowledged.
func PendingJob(jobID string) UploadJob {
	return UploadJob{JobID: jobID, Status: JobStatusPending}
}
