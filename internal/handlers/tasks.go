package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todo_service/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errTaskNotFoundMsg = "To-do not found"
	errInvalidBodyPref = "invalid body: "
)

type createTaskRequest struct {
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

// @Summary      Create a task
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body  createTaskRequest  true  "Task payload"
// @Success      201   {object}  map[string]int  "id"
// @Failure      400   {object}  map[string]string
// @Failure      401   "missing token"
// @Failure      403   "invalid token"
// @Failure      500   {object}  map[string]string
// @Router       /todos [post]
// @Security     ApiKeyAuth
func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	id, err := h.services.Tasks.Create(c.Request.Context(), callerID(c), req.Description)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "task_create_failed", err, "userId", callerID(c))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      List the caller's tasks
// @Tags         todos
// @Produce      json
// @Success      200  {array}  models.Task
// @Failure      401  "missing token"
// @Failure      403  "invalid token"
// @Failure      500  {object}  map[string]string
// @Router       /todos [get]
// @Security     ApiKeyAuth
func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context(), callerID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "task_list_failed", err, "userId", callerID(c))
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// @Summary      Update a task's description and status
// @Tags         todos
// @Accept       json
// @Param        id    path  int                true  "Task id"
// @Param        body  body  updateTaskRequest  true  "New values"
// @Success      204   "updated"
// @Failure      400   {object}  map[string]string
// @Failure      401   "missing token"
// @Failure      403   "invalid token"
// @Failure      404   {object}  map[string]string  "not found or not the owner"
// @Failure      500   {object}  map[string]string
// @Router       /todos/{id} [put]
// @Security     ApiKeyAuth
func (h *Handler) updateTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// A non-numeric id can't match any row; same outcome as a miss.
		c.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFoundMsg})
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	if err := h.services.Tasks.Update(c.Request.Context(), id, callerID(c), req.Description, req.Status); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFoundMsg})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "task_update_failed", err, "taskId", id)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary      Delete a task
// @Tags         todos
// @Param        id  path  int  true  "Task id"
// @Success      204  "deleted"
// @Failure      401  "missing token"
// @Failure      403  "invalid token"
// @Failure      404  {object}  map[string]string  "not found or not the owner"
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id} [delete]
// @Security     ApiKeyAuth
func (h *Handler) deleteTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFoundMsg})
		return
	}

	if err := h.services.Tasks.Delete(c.Request.Context(), id, callerID(c)); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errTaskNotFoundMsg})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "task_delete_failed", err, "taskId", id)
		return
	}

	c.Status(http.StatusNoContent)
}
