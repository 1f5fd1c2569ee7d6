package handler

import (
	"net/http"
	"strconv"

	"friends-corner/internal/logger"
	"friends-corner/internal/model"
	"friends-corner/internal/service"

	"github.com/gin-gonic/gin"
)

type MemoryHandler struct {
	svc *service.MemoryService
}

func NewMemoryHandler(svc *service.MemoryService) *MemoryHandler { return &MemoryHandler{svc: svc} }

// GET /api/memories — active memory cards in display order.
func (h *MemoryHandler) List(c *gin.Context) {
	memories, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Warn("memories.list degraded", "err", err)
		memories = []model.Memory{}
	}
	if memories == nil {
		memories = []model.Memory{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "memories": memories})
}

// POST /api/admin/memories
func (h *MemoryHandler) Create(c *gin.Context) {
	var in model.MemoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}
	m, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "Memory not found", "Failed to add memory")
		return
	}
	logger.Info("memory.created", "id", m.ID, "title", m.Title)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Memory added successfully!", "memoryId": m.ID})
}

// PUT /api/admin/memories/:id
func (h *MemoryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	var patch model.MemoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}
	m, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err, "Memory not found", "Failed to update memory")
		return
	}
	logger.Info("memory.updated", "id", id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Memory updated successfully!", "memory": m})
}

// DELETE /api/admin/memories/:id — soft delete.
func (h *MemoryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		writeError(c, err, "Memory not found", "Failed to delete memory")
		return
	}
	logger.Info("memory.removed", "id", id)
	c.JSON(http.StatusOK, Response{Success: true, Message: "Memory removed successfully!"})
}
