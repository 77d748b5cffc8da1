package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DevController serves the liveness and debugging endpoints.
type DevController struct {
	db *gorm.DB
}

func NewDevController(db *gorm.DB) *DevController {
	return &DevController{db: db}
}

func (ctl *DevController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "minifitna",
		"status":    "ok",
		"endpoints": []string{"/health", "/api/*"},
	})
}

// Health probes the store. The error variant deliberately carries no
// detail.
func (ctl *DevController) Health(c *gin.Context) {
	if err := ctl.db.Exec("SELECT 1").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (ctl *DevController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pong": true, "utc": time.Now().UTC().Format(time.RFC3339)})
}

func (ctl *DevController) Echo(c *gin.Context) {
	var payload interface{}
	_ = c.ShouldBindJSON(&payload)
	c.JSON(http.StatusOK, gin.H{"ok": true, "you_sent": payload})
}
