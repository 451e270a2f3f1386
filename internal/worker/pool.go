package worker

import (
	"context"

	"github.com/Xunop/e-verse/internal/model"
)

type WorkPool interface {
	Push(ctx context.Context, job model.DownloadJob, done chan<- model.DownloadJob)
}
