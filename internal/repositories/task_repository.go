package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "task-allocator.com/task-allocator/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask writes exactly one new document in the tasks collection
// and returns its generated identifier. The document is assumed fully
// validated and normalized by the submission pipeline.
func (r *TaskRepository) CreateTask(ctx context.Context, task *model.Task) (string, error) {
	task.ID = uuid.NewString()

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return "", errors.WithStack(err)
	}

	return task.ID, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&tasks).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return count, nil
}
