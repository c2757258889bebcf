package handlers

import (
	"net/http"

	"github.com/ScheffChuk/drive-t3-s/middleware"
	"github.com/ScheffChuk/drive-t3-s/utils"

	"github.com/gin-gonic/gin"
)

func ListFiles(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)
	folderID, err := parseIDParam(c.DefaultQuery("folder_id", "0"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid folder id")
		return
	}

	files, err := getServices().File.ListFiles(c.Request.Context(), ownerID, folderID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, files)
}

func DeleteFile(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)
	fileID, err := parseIDParam(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid file id")
		return
	}

	revision, err := getServices().File.DeleteFile(c.Request.Context(), ownerID, fileID)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "file deleted", gin.H{"revision": revision})
}
