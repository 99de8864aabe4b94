package handler

import (
	"StudyVault/internal/dto"
	"StudyVault/internal/service"
	"StudyVault/internal/storage"
	"StudyVault/model"
	"StudyVault/utils"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListFiles lists note records filtered by subject and chapter.
func ListFiles(c *gin.Context) {
	files, err := service.FindNotes(c.Request.Context(), c.Query("subject"), c.Query("chapter"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, dto.FileListResponse{Files: files, Total: len(files)})
}

// ListAssignments lists assignment records filtered by subject and status.
func ListAssignments(c *gin.Context) {
	status := model.Status(c.Query("status"))
	assignments, err := service.FindAssignments(c.Request.Context(), c.Query("subject"), status)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, dto.AssignmentListResponse{Assignments: assignments, Total: len(assignments)})
}

// DownloadFile streams a stored blob by file record id.
func DownloadFile(c *gin.Context) {
	record, err := service.FindFileByID(c.Request.Context(), c.Param("fileID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	streamBlob(c, record.StorageRef, record.Filename)
}

// DownloadBlob streams a stored blob by raw storage reference. This is
// what the GridFS backend's access links point at, and it stays reachable
// for blobs whose metadata insert failed.
func DownloadBlob(c *gin.Context) {
	streamBlob(c, c.Param("ref"), "")
}

func streamBlob(c *gin.Context, ref, filename string) {
	reader, info, err := storage.Default.ReadBlob(c.Request.Context(), ref)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blob not found"})
		return
	}
	defer reader.Close()

	if filename == "" {
		filename = info.Filename
	}
	filename = utils.SanitizeHeaderFilename(filename)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Type", info.ContentType)
	if info.Size > 0 {
		c.Header("Content-Length", fmt.Sprintf("%d", info.Size))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; nothing left to report to the client.
		return
	}
}

// Health reports process liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
