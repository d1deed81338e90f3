package jobs

import (
	"naturexpress-cargo-backend/internal/config"
	"naturexpress-cargo-backend/internal/logger"
	"naturexpress-cargo-backend/internal/repository"
	"naturexpress-cargo-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	requests repository.RequestRepository
	archive  repository.ArchiveRepository
	notifier service.Notifier
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies. archive and
// notifier may be nil when the corresponding backends are not configured.
func NewJobRunner(requests repository.RequestRepository, archive repository.ArchiveRepository, notifier service.Notifier, cfg *config.Config) *JobRunner {
	return &JobRunner{
		requests: requests,
		archive:  archive,
		notifier: notifier,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.DigestPendingRequests()
	jr.ArchiveCompletedRequests()
}
