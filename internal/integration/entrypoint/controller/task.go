// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/usecase/task"
	"github.com/atelier-crm/backend/internal/domain/entity"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/dto"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/middleware"
)

// TaskController handles task endpoints.
type TaskController struct {
	createUseCase *task.CreateTaskUseCase
	listUseCase   *task.ListTasksUseCase
	updateUseCase *task.UpdateTaskUseCase
	deleteUseCase *task.DeleteTaskUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	createUseCase *task.CreateTaskUseCase,
	listUseCase *task.ListTasksUseCase,
	updateUseCase *task.UpdateTaskUseCase,
	deleteUseCase *task.DeleteTaskUseCase,
) *TaskController {
	return &TaskController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTaskFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), task.CreateTaskInput{
		UserID:      userID,
		TaskName:    req.TaskName,
		DueDate:     req.DueDate,
		Priority:    entity.TaskPriority(req.Priority),
		Description: req.Description,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(output.Task))
}

// List handles GET /tasks requests. An optional ?status= query parameter
// filters tasks by status.
func (c *TaskController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), task.ListTasksInput{
		UserID: userID,
		Status: entity.TaskStatus(ctx.Query("status")),
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(output.Tasks))
}

// Update handles PATCH /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID",
			Code:  string(domainerror.ErrCodeTaskNotFound),
		})
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTaskFields),
		})
		return
	}

	input := task.UpdateTaskInput{
		UserID:      userID,
		TaskID:      taskID,
		TaskName:    req.TaskName,
		DueDate:     req.DueDate,
		Description: req.Description,
	}
	if req.Priority != nil {
		priority := entity.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID",
			Code:  string(domainerror.ErrCodeTaskNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), task.DeleteTaskInput{
		UserID: userID,
		TaskID: taskID,
	}); err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Task deleted",
	})
}

// handleTaskError maps task errors to HTTP responses.
func (c *TaskController) handleTaskError(ctx *gin.Context, err error) {
	var taskErr *domainerror.TaskError
	if errors.As(err, &taskErr) {
		ctx.JSON(statusCodeForTaskError(taskErr.Code), dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForTaskError maps task error codes to HTTP status codes.
func statusCodeForTaskError(code domainerror.TaskErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingTaskFields,
		domainerror.ErrCodeInvalidTaskStatus,
		domainerror.ErrCodeInvalidTaskPriority,
		domainerror.ErrCodeInvalidDueDate:
		return http.StatusBadRequest
	case domainerror.ErrCodeTaskNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
