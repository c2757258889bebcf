package handlers

import (
	"net/http"
	"strconv"

	"github.com/ScheffChuk/drive-t3-s/middleware"
	"github.com/ScheffChuk/drive-t3-s/utils"

	"github.com/gin-gonic/gin"
)

type CreateFolderRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	ParentID uint   `json:"parent_id"`
}

func ListFolders(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)
	parentID, err := parseIDParam(c.DefaultQuery("parent_id", "0"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid parent folder id")
		return
	}

	folders, err := getServices().Folder.ListFolders(c.Request.Context(), ownerID, parentID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, folders)
}

func GetRootFolder(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)

	root, err := getServices().Folder.GetOrCreateRootFolder(c.Request.Context(), ownerID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, root)
}

func ListFolderAncestors(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)
	folderID, err := parseIDParam(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid folder id")
		return
	}

	chain, err := getServices().Folder.ListAncestors(c.Request.Context(), ownerID, folderID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, chain)
}

func CreateFolder(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)

	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	folder, revision, err := getServices().Folder.CreateFolder(c.Request.Context(), ownerID, req.Name, req.ParentID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{
		"folder":   folder,
		"revision": revision,
	})
}

func DeleteFolder(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)
	folderID, err := parseIDParam(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid folder id")
		return
	}

	revision, err := getServices().Folder.DeleteFolder(c.Request.Context(), ownerID, folderID)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "folder deleted", gin.H{"revision": revision})
}

func parseIDParam(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
