package jobs

import (
	"context"
	"time"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/logger"
)

const jobTimeout = 2 * time.Minute

// DigestPendingRequests mails the admin a summary of requests still waiting
// for confirmation.
func (jr *JobRunner) DigestPendingRequests() {
	jr.runWithRecovery("DigestPendingRequests", func() {
		if jr.notifier == nil {
			logger.Info("Email not configured, skipping digest")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		all, err := jr.requests.ListAll(ctx)
		if err != nil {
			logger.Error("Failed to list requests for digest", "error", err)
			return
		}

		var pending []domain.ServiceRequest
		for _, req := range all {
			if req.Status == domain.RequestStatusPending {
				pending = append(pending, req)
			}
		}
		if len(pending) == 0 {
			logger.Info("No pending requests, skipping digest")
			return
		}

		if err := jr.notifier.NotifyPendingDigest(ctx, pending); err != nil {
			logger.Error("Failed to send pending digest", "count", len(pending), "error", err)
			return
		}
		logger.Info("Sent pending request digest", "count", len(pending))
	})
}

// ArchiveCompletedRequests mirrors delivered and cancelled requests into the
// relational archive. Already archived requests are skipped by the store.
func (jr *JobRunner) ArchiveCompletedRequests() {
	jr.runWithRecovery("ArchiveCompletedRequests", func() {
		if jr.archive == nil {
			logger.Info("Archive not configured, skipping")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		all, err := jr.requests.ListAll(ctx)
		if err != nil {
			logger.Error("Failed to list requests for archival", "error", err)
			return
		}

		archived := 0
		for _, req := range all {
			if !req.Status.Terminal() {
				continue
			}
			if err := jr.archive.ArchiveRequest(ctx, &req); err != nil {
				logger.Error("Failed to archive request", "request_id", req.ID, "error", err)
				continue
			}
			archived++
		}

		total, err := jr.archive.CountArchived(ctx)
		if err != nil {
			logger.Error("Failed to count archived requests", "error", err)
			return
		}
		logger.Info("Archived completed requests", "processed", archived, "total_archived", total)
	})
}
