package handlers

import (
	"github.com/ScheffChuk/drive-t3-s/utils"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	utils.Success(c, gin.H{"status": "ok"})
}
