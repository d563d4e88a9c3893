package repository

import (
	"context"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertNotificationJobQuery = `
		INSERT INTO notification_jobs (id, kind, topic, payload, status, attempts, run_at, created_at)
		VALUES ($1, $2, $3, $4, 'queued', 0, $5, now())`

	// FOR UPDATE SKIP LOCKED lets concurrent workers drain the queue
	// without double-dispatching a row.
	dueNotificationJobsQuery = `
		SELECT id, kind, topic, payload, attempts
		FROM notification_jobs
		WHERE status = 'queued' AND run_at <= $1
		ORDER BY run_at
		LIMIT $2
		FOR UPDATE SKIP LOCKED`

	markNotificationSentQuery = `
		UPDATE notification_jobs
		SET status = 'sent', updated_at = now()
		WHERE id = $1`

	markNotificationFailedQuery = `
		UPDATE notification_jobs
		SET status = $2, attempts = attempts + 1, last_error = $3,
		    run_at = $4, updated_at = now()
		WHERE id = $1`
)

type NotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, insertNotificationJobQuery, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) DueJobs(ctx context.Context, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.db.Query(ctx, dueNotificationJobsQuery, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due notification jobs", err)
	}
	defer rows.Close()

	var jobs []shared.NotificationJob
	for rows.Next() {
		var job shared.NotificationJob
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, markNotificationSentQuery, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextRun time.Time, dead bool) error {
	status := "queued"
	if dead {
		status = "dead"
	}
	if _, err := r.db.Exec(ctx, markNotificationFailedQuery, id, status, lastError, nextRun); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
