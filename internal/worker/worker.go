package worker

import (
	"context"

	"github.com/Xunop/e-verse/internal/model"
)

// Task is a job on its way to a worker. The finished job is sent on Done.
type Task struct {
	Ctx  context.Context
	Job  model.DownloadJob
	Done chan<- model.DownloadJob
}

type Worker interface {
	Run(c <-chan Task)
}
