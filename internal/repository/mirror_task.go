package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"greengrow-storefront/internal/model"
)

const (
	MirrorTaskStatusNew    = "NEW"
	MirrorTaskStatusDone   = "DONE"
	MirrorTaskStatusFailed = "FAILED"
)

type MirrorTaskRepository interface {
	Create(ctx context.Context, tx *gorm.DB, task *model.MirrorTask) error

	// FindDue returns NEW tasks whose next attempt time has passed, oldest first.
	FindDue(ctx context.Context, now time.Time, limit int) ([]*model.MirrorTask, error)

	MarkDone(ctx context.Context, taskID uint) error
	MarkRetry(ctx context.Context, taskID uint, attempts int, nextAttemptAt time.Time, lastError string) error
	MarkFailed(ctx context.Context, taskID uint, attempts int, lastError string) error
}

type mirrorTaskRepoImpl struct {
	db *gorm.DB
}

func NewMirrorTaskRepository(db *gorm.DB) MirrorTaskRepository {
	return &mirrorTaskRepoImpl{
		db: db,
	}
}

func (r *mirrorTaskRepoImpl) Create(ctx context.Context, tx *gorm.DB, task *model.MirrorTask) error {
	return tx.WithContext(ctx).Create(task).Error
}

func (r *mirrorTaskRepoImpl) FindDue(ctx context.Context, now time.Time, limit int) ([]*model.MirrorTask, error) {
	var tasks []*model.MirrorTask
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_attempt_at <= ?", MirrorTaskStatusNew, now).
		Order("next_attempt_at ASC").
		Limit(limit).
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *mirrorTaskRepoImpl) MarkDone(ctx context.Context, taskID uint) error {
	return r.db.WithContext(ctx).Model(&model.MirrorTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"status":     MirrorTaskStatusDone,
			"updated_at": time.Now(),
		}).Error
}

func (r *mirrorTaskRepoImpl) MarkRetry(ctx context.Context, taskID uint, attempts int, nextAttemptAt time.Time, lastError string) error {
	return r.db.WithContext(ctx).Model(&model.MirrorTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"attempts":        attempts,
			"next_attempt_at": nextAttemptAt,
			"last_error":      lastError,
			"updated_at":      time.Now(),
		}).Error
}

func (r *mirrorTaskRepoImpl) MarkFailed(ctx context.Context, taskID uint, attempts int, lastError string) error {
	return r.db.WithContext(ctx).Model(&model.MirrorTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"status":     MirrorTaskStatusFailed,
			"attempts":   attempts,
			"last_error": lastError,
			"updated_at": time.Now(),
		}).Error
}
