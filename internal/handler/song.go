package handler

import (
	"net/http"
	"strconv"

	"friends-corner/internal/logger"
	"friends-corner/internal/model"
	"friends-corner/internal/service"

	"github.com/gin-gonic/gin"
)

type SongHandler struct {
	svc *service.SongService
}

func NewSongHandler(svc *service.SongService) *SongHandler { return &SongHandler{svc: svc} }

// GET /api/songs — approved songs only. The public playlist keeps rendering
// when the store is down, so any failure degrades to an empty list instead of
// an error.
func (h *SongHandler) List(c *gin.Context) {
	songs, err := h.svc.ListApproved(c.Request.Context())
	if err != nil {
		logger.Warn("songs.list degraded", "err", err)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"songs":   []model.Song{},
			"message": "Database connection failed - showing demo mode",
		})
		return
	}
	if songs == nil {
		songs = []model.Song{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "songs": songs})
}

// GET /api/songs/:id
func (h *SongHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	song, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Song not found", "Failed to fetch song")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "song": song})
}

// POST /api/songs/upload
func (h *SongHandler) Upload(c *gin.Context) {
	upload := model.SongUpload{
		Title:       c.PostForm("title"),
		Artist:      c.PostForm("artist"),
		YouTubeURL:  c.PostForm("youtubeUrl"),
		Description: c.PostForm("description"),
		AddedBy:     c.PostForm("addedBy"),
		Tags:        c.PostForm("tags"),
		Mood:        c.PostForm("mood"),
		Lyrics:      c.PostForm("lyrics"),
	}

	song, err := h.svc.Upload(c.Request.Context(), upload)
	if err != nil {
		writeError(c, err, "Song not found", "Failed to upload song")
		return
	}

	logger.Info("song.uploaded", "id", song.ID, "by", song.AddedBy)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Song uploaded successfully! It will appear in the playlist after admin approval.",
		"songId":  song.ID,
	})
}

// GET /api/admin/songs?type=pending|all
func (h *SongHandler) AdminList(c *gin.Context) {
	var (
		songs []model.Song
		err   error
	)
	if c.Query("type") == "pending" {
		songs, err = h.svc.ListPending(c.Request.Context())
	} else {
		songs, err = h.svc.ListAll(c.Request.Context())
	}
	if err != nil {
		logger.Error("admin.songs.list failed", "err", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch songs")
		return
	}
	if songs == nil {
		songs = []model.Song{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "songs": songs})
}

// POST /api/admin/songs/:id/approve
func (h *SongHandler) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Approve(c.Request.Context(), id); err != nil {
		writeError(c, err, "Song not found", "Failed to approve song")
		return
	}
	logger.Info("song.approved", "id", id)
	c.JSON(http.StatusOK, Response{Success: true, Message: "Song approved successfully!"})
}

// DELETE /api/admin/songs/:id
func (h *SongHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		writeError(c, err, "Song not found", "Failed to delete song")
		return
	}
	logger.Info("song.deleted", "id", id)
	c.JSON(http.StatusOK, Response{Success: true, Message: "Song deleted successfully!"})
}
