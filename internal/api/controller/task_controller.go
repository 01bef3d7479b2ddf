package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/partykeep/partykeep/internal/api/middleware"
	"github.com/partykeep/partykeep/internal/api/response"
	"github.com/partykeep/partykeep/internal/service"
)

type TaskController struct {
	taskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

type CreateTaskRequest struct {
	TaskName string `json:"task_name" binding:"required"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

// UpdateTaskRequest uses pointers so PUT can distinguish "field absent"
// from "field set to empty". Only these three columns are writable.
type UpdateTaskRequest struct {
	TaskName *string `json:"task_name"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

func (ctrl *TaskController) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	tasks, err := ctrl.taskService.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("task list failed", "userID", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not retrieve tasks.")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (ctrl *TaskController) Get(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	task, err := ctrl.taskService.Get(c.Request.Context(), userID, id)
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Task not found.")
		return
	}
	if err != nil {
		slog.Error("task fetch failed", "userID", userID, "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Could not retrieve task.")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (ctrl *TaskController) Create(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Task name is required.")
		return
	}

	task, err := ctrl.taskService.Create(c.Request.Context(), userID, service.TaskInput{
		TaskName: req.TaskName,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		slog.Error("task create failed", "userID", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "Unable to add task: "+req.TaskName)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (ctrl *TaskController) Update(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid task fields.")
		return
	}

	err := ctrl.taskService.Update(c.Request.Context(), userID, id, service.TaskUpdate{
		TaskName: req.TaskName,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Task not found.")
		return
	}
	if err != nil {
		slog.Error("task update failed", "userID", userID, "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Unable to update task.")
		return
	}

	response.Message(c, http.StatusOK, "Updated successfully!")
}

func (ctrl *TaskController) Delete(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	err := ctrl.taskService.Delete(c.Request.Context(), userID, id)
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Task not found.")
		return
	}
	if err != nil {
		slog.Error("task delete failed", "userID", userID, "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Unable to delete task.")
		return
	}

	response.Message(c, http.StatusOK, "Deleted successfully.")
}

// pathID parses a numeric :id segment, answering 400 itself on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
