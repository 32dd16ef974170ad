package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dreamdecode/backend/pkg/tool"
)

type healthResp struct {
	Status     string `json:"status"`
	HebrewYear int    `json:"hebrew_year"`
}

// @Summary      Health check
// @Description  Returns service status and the current Hebrew year
// @Tags         System
// @Produce      json
// @Success      200  {object}  healthResp
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResp{Status: "ok", HebrewYear: tool.HebrewYear(time.Now())})
}

func RegisterHealthRoutes(r gin.IRouter) {
	r.GET("/health", Health)
}
