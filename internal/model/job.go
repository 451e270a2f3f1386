package model

const (
	JobStatusPending = "pending"
	JobStatusRunning = "running"
	JobStatusDone    = "done"
	JobStatusSkipped = "skipped"
)

// DownloadJob asks a download worker to persist one chapter for offline use.
type DownloadJob struct {
	Key    ChapterKey
	Status string
	// Verses is the number of verses persisted, zero when skipped.
	Verses int
	Err    error
}
