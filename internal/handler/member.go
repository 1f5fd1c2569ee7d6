package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"friends-corner/internal/logger"
	"friends-corner/internal/model"
	"friends-corner/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc *service.MemberService
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler { return &MemberHandler{svc: svc} }

// GET /api/members — active members only. Empty list on store failure so the
// public page still renders.
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Warn("members.list degraded", "err", err)
		members = []model.Member{}
	}
	if members == nil {
		members = []model.Member{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "members": members})
}

// POST /api/admin/members
func (h *MemberHandler) Create(c *gin.Context) {
	var in model.MemberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}
	m, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "Member not found", "Failed to add member")
		return
	}
	logger.Info("member.created", "id", m.ID, "name", m.Name)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  fmt.Sprintf("Member %q added successfully!", m.Name),
		"memberId": m.ID,
		"member":   m,
	})
}

// PUT /api/admin/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	var patch model.MemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}
	m, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err, "Member not found", "Failed to update member")
		return
	}
	logger.Info("member.updated", "id", id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Member updated successfully!", "member": m})
}

// DELETE /api/admin/members/:id — soft delete.
func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		writeError(c, err, "Member not found", "Failed to delete member")
		return
	}
	logger.Info("member.removed", "id", id)
	c.JSON(http.StatusOK, Response{Success: true, Message: "Member removed successfully!"})
}
