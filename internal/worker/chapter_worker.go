package worker // import "github.com/Xunop/e-verse/internal/worker"

import (
	"context"
	"sync"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/resolver"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrNoVerses = errors.New("chapter has no verses")

// ChapterResolver resolves one chapter of one translation.
type ChapterResolver interface {
	Resolve(ctx context.Context, key model.ChapterKey) resolver.Result
}

// ChapterSink persists downloaded chapters.
type ChapterSink interface {
	IsDownloaded(key model.ChapterKey) bool
	Save(key model.ChapterKey, verses []model.Verse) error
}

type DownloadPool struct {
	queue     chan Task
	closeOnce sync.Once
}

func NewDownloadPool(resolver ChapterResolver, sink ChapterSink, size int) *DownloadPool {
	if size < 1 {
		size = 1
	}
	pool := &DownloadPool{
		queue: make(chan Task),
	}

	for i := 0; i < size; i++ {
		worker := &ChapterWorker{id: i, resolver: resolver, sink: sink}
		go worker.Run(pool.queue)
	}

	return pool
}

// Push hands job to the next free worker. When ctx ends first the job is
// reported on done as failed without running.
func (p *DownloadPool) Push(ctx context.Context, job model.DownloadJob, done chan<- model.DownloadJob) {
	job.Status = model.JobStatusPending
	select {
	case p.queue <- Task{Ctx: ctx, Job: job, Done: done}:
	case <-ctx.Done():
		job.Status = model.JobStatusSkipped
		job.Err = ctx.Err()
		done <- job
	}
}

// Close stops the workers. Push must not be called afterwards.
func (p *DownloadPool) Close() {
	p.closeOnce.Do(func() { close(p.queue) })
}

type ChapterWorker struct {
	id       int
	resolver ChapterResolver
	sink     ChapterSink
}

// Run downloads chapters until the queue is closed.
func (w *ChapterWorker) Run(c <-chan Task) {
	log.Debug("ChapterWorker is running", zap.Int("worker_id", w.id))

	for t := range c {
		job := t.Job
		job.Status = model.JobStatusRunning
		log.Debug("Job received by worker",
			zap.Int("worker_id", w.id),
			zap.String("chapter", job.Key.String()))

		w.process(t.Ctx, &job)
		t.Done <- job
	}
}

func (w *ChapterWorker) process(ctx context.Context, job *model.DownloadJob) {
	if w.sink.IsDownloaded(job.Key) {
		job.Status = model.JobStatusDone
		return
	}

	res := w.resolver.Resolve(ctx, job.Key)
	if res.Err != nil || len(res.Verses) == 0 {
		job.Status = model.JobStatusSkipped
		job.Err = res.Err
		if job.Err == nil {
			job.Err = ErrNoVerses
		}
		log.Debug("Chapter skipped", zap.String("chapter", job.Key.String()), zap.Error(job.Err))
		return
	}

	if err := w.sink.Save(job.Key, res.Verses); err != nil {
		job.Status = model.JobStatusSkipped
		job.Err = err
		log.Warn("Unable to save chapter", zap.String("chapter", job.Key.String()), zap.Error(err))
		return
	}
	job.Status = model.JobStatusDone
	job.Verses = len(res.Verses)
}
