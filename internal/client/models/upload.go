package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UploadKind tells how the server answered an upload.
type UploadKind int

const (
	// UploadAsync means the server only acknowledged the file with a job id.
	UploadAsync UploadKind = iota
	// UploadSync means the server already reported status and row counts.
	UploadSync
)

func (k UploadKind) String() string {
	if k == UploadSync {
		return "sync"
	}
	return "async"
}

var ErrMissingJobID = errors.New("upload response has no job_id")

// UploadResponse is the decoded body of a successful upload request.
type UploadResponse struct {
	Kind UploadKind
	job  UploadJob
}

// NewSyncUploadResponse wraps a job reported in full by the server.
func NewSyncUploadResponse(job UploadJob) UploadResponse {
	return UploadResponse{Kind: UploadSync, job: job}
}

// NewAsyncUploadResponse wraps a bare job acknowledgement.
func NewAsyncUploadResponse(jobID string) UploadResponse {
	return UploadResponse{Kind: UploadAsync, job: PendingJob(jobID)}
}

// Job returns the initial job snapshot. Sync responses are adopted verbatim,
// async ones are pending with zero counts.
func (r UploadResponse) Job() UploadJob {
	return r.job
}

// DecodeUploadResponse decides the response kind by the presence of both the
// "status" and "total_rows" keys. A key holding JSON null counts as absent;
// a zero value counts as present.
func DecodeUploadResponse(body []byte) (UploadResponse, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	var jobID string
	if raw, ok := fields["job_id"]; ok {
		if err := json.Unmarshal(raw, &jobID); err != nil {
			return UploadResponse{}, fmt.Errorf("decode job_id: %w", err)
		}
	}
	if jobID == "" {
		return UploadResponse{}, ErrMissingJobID
	}

	if !present(fields, "status") || !present(fields, "total_rows") {
		return NewAsyncUploadResponse(jobID), nil
	}

	var job UploadJob
	if err := json.Unmarshal(body, &job); err != nil {
		return UploadResponse{}, fmt.Errorf("decode upload job: %w", err)
	}
	if !job.Status.Valid() {
		return UploadResponse{}, fmt.Errorf("unknown job status %q", job.Status)
	}
	return NewSyncUploadResponse(job), nil
}

func present(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	return ok && string(raw) != "null"
}
