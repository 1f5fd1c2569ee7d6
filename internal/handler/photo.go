package handler

import (
	"io"
	"net/http"
	"strconv"

	"friends-corner/internal/logger"
	"friends-corner/internal/model"
	"friends-corner/internal/service"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	svc *service.PhotoService
}

func NewPhotoHandler(svc *service.PhotoService) *PhotoHandler { return &PhotoHandler{svc: svc} }

// GET /api/photos — approved photos only.
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.svc.ListApproved(c.Request.Context())
	if err != nil {
		logger.Error("photos.list failed", "err", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}
	if photos == nil {
		photos = []model.Photo{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "photos": photos})
}

// GET /api/photos/:id — any approval state, for the detail view.
func (h *PhotoHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	photo, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Photo not found", "Failed to fetch photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "photo": photo})
}

// POST /api/upload — multipart form with the image under "photo".
func (h *PhotoHandler) Upload(c *gin.Context) {
	upload := model.PhotoUpload{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Date:        c.PostForm("date"),
		Location:    c.PostForm("location"),
		UploadedBy:  c.PostForm("uploadedBy"),
		Tags:        c.PostForm("tags"),
	}

	if file, err := c.FormFile("photo"); err == nil {
		f, err := file.Open()
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to process image file")
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to process image file")
			return
		}
		upload.ImageData = data
		upload.ImageType = file.Header.Get("Content-Type")
	}

	photo, err := h.svc.Upload(c.Request.Context(), upload)
	if err != nil {
		writeError(c, err, "Photo not found", "Failed to upload photo")
		return
	}

	logger.Info("photo.uploaded", "id", photo.ID, "by", photo.UploadedBy)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Photo uploaded successfully! It will appear in the gallery after admin approval.",
		"photoId": photo.ID,
	})
}

// GET /api/admin/photos?type=pending|all
func (h *PhotoHandler) AdminList(c *gin.Context) {
	var (
		photos []model.Photo
		err    error
	)
	if c.Query("type") == "pending" {
		photos, err = h.svc.ListPending(c.Request.Context())
	} else {
		photos, err = h.svc.ListAll(c.Request.Context())
	}
	if err != nil {
		logger.Error("admin.photos.list failed", "err", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}
	if photos == nil {
		photos = []model.Photo{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "photos": photos})
}

// POST /api/admin/photos/:id/approve
func (h *PhotoHandler) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Approve(c.Request.Context(), id); err != nil {
		writeError(c, err, "Photo not found", "Failed to approve photo")
		return
	}
	logger.Info("photo.approved", "id", id)
	c.JSON(http.StatusOK, Response{Success: true, Message: "Photo approved successfully!"})
}

// DELETE /api/admin/photos/:id
func (h *PhotoHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		writeError(c, err, "Photo not found", "Failed to delete photo")
		return
	}
	logger.Info("photo.deleted", "id", id)
	c.JSON(http.StatusOK, Response{Success: true, Message: "Photo deleted successfully!"})
}
