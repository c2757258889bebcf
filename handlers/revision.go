package handlers

import (
	"github.com/ScheffChuk/drive-t3-s/middleware"
	"github.com/ScheffChuk/drive-t3-s/utils"

	"github.com/gin-gonic/gin"
)

// GetRevision returns the owner's current revision counter so the client
// can decide whether its cached listings are stale.
func GetRevision(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)

	revision, err := getServices().Revision.Current(c.Request.Context(), ownerID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"revision": revision})
}
