package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/ScheffChuk/drive-t3-s/config"
	"github.com/ScheffChuk/drive-t3-s/services"
	"github.com/ScheffChuk/drive-t3-s/utils"

	"github.com/gin-gonic/gin"
)

type UploadCallbackRequest struct {
	OwnerID  string `json:"owner_id" binding:"required"`
	Name     string `json:"name" binding:"required,max=255"`
	FolderID uint   `json:"folder_id"`
	URL      string `json:"url" binding:"required,max=1000"`
	Size     int64  `json:"size" binding:"min=0"`
}

// UploadCallback is invoked by the blob service after it has stored the
// bytes of an upload. It is authenticated by the shared callback token, not
// by a user session: the owner comes from the signed upload metadata.
func UploadCallback(c *gin.Context) {
	token := c.GetHeader("X-Callback-Token")
	expected := config.AppConfig.Blob.CallbackToken
	if expected == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		utils.Error(c, http.StatusUnauthorized, "invalid callback token")
		return
	}

	var req UploadCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	file, revision, err := getServices().File.RecordUpload(c.Request.Context(), services.UploadCallbackInput{
		OwnerID:  req.OwnerID,
		Name:     req.Name,
		FolderID: req.FolderID,
		URL:      req.URL,
		Size:     req.Size,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{
		"file":     file,
		"revision": revision,
	})
}
