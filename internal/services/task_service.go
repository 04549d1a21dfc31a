package services

import (
	"context"
	"time"

	"task-allocator.com/task-allocator/internal/constants"
	dto "task-allocator.com/task-allocator/internal/data_models"
	model "task-allocator.com/task-allocator/internal/models"
	repository "task-allocator.com/task-allocator/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask persists one new task document from an already validated
// request plus its normalized deadline and hours. System bookkeeping is
// assigned here and never taken from the payload: both timestamps are
// the same server instant, the task starts unassigned with no comments
// and zero completion.
func (s *TaskService) CreateTask(
	ctx context.Context,
	req *dto.CreateTaskRequest,
	deadline time.Time,
	estimatedHours float64,
) (string, error) {
	now := time.Now().UTC()

	skills := make([]model.RequiredSkill, 0, len(req.RequiredSkills))
	for _, skill := range req.RequiredSkills {
		skills = append(skills, model.RequiredSkill{
			ID:           skill.ID,
			Name:         skill.Name,
			MinimumLevel: skill.MinimumLevel,
		})
	}

	task := &model.Task{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       constants.TaskPriority(req.Priority),
		EstimatedHours: estimatedHours,
		Project:        req.Project,
		Status:         constants.StatusUnassigned,
		Deadline:       deadline,
		RequiredSkills: skills,

		AssignedTo:           nil,
		Comments:             []model.Comment{},
		CompletionPercentage: 0,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	return s.repo.CreateTask(ctx, task)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}
