package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/lifecycle"
	"github.com/conclave-run/conclave/pkg/models"
)

func contextWithTimeout(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), d)
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Prompt        string   `json:"prompt" binding:"required"`
	GlobalContext string   `json:"global_context"`
	Constraints   []string `json:"constraints"`
	Profile       string   `json:"profile"`
	// MaxBudget caps total tree spend in dollars. Omitted means uncapped.
	MaxBudget *float64 `json:"max_budget"`
}

// MessageRequest is the body of POST /api/tasks/:id/message.
type MessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// TaskResponse is the body of GET /api/tasks/:id.
type TaskResponse struct {
	Task       *models.Task            `json:"task"`
	Agents     []*models.AgentSnapshot `json:"agents"`
	TotalSpend string                  `json:"total_spend"`
}

func (s *Server) createTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lreq := lifecycle.TaskRequest{
		Prompt:        req.Prompt,
		GlobalContext: req.GlobalContext,
		Constraints:   req.Constraints,
		ProfileName:   req.Profile,
	}
	if req.MaxBudget != nil {
		if *req.MaxBudget <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_budget must be positive"})
			return
		}
		maxBudget := decimal.NewFromFloat(*req.MaxBudget)
		lreq.MaxBudget = &maxBudget
	}

	task, err := s.manager.CreateTask(c.Request.Context(), lreq)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) getTask(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, 10*time.Second)
	defer cancel()
	taskID := c.Param("id")

	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	agents, err := s.store.ListAgentsByTask(ctx, taskID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	spend, err := s.store.SumCosts(ctx, taskID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TaskResponse{
		Task:       task,
		Agents:     agents,
		TotalSpend: spend.StringFixed(4),
	})
}

func (s *Server) postMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.manager.SendUserMessage(c.Request.Context(), c.Param("id"), req.Content); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (s *Server) pauseTask(c *gin.Context) {
	if err := s.manager.PauseTask(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (s *Server) restoreTask(c *gin.Context) {
	ctx := c.Request.Context()
	taskID := c.Param("id")

	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if task.Status != models.TaskStatusPaused {
		c.JSON(http.StatusConflict, gin.H{"error": "task is not paused"})
		return
	}

	if err := s.manager.RestoreTask(ctx, taskID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.manager.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
