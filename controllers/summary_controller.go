package controllers

import (
	"net/http"

	"github.com/otterable/minifitna/middlewares"
	"github.com/otterable/minifitna/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	summaries *services.SummaryService
}

func NewSummaryController(summaries *services.SummaryService) *SummaryController {
	return &SummaryController{summaries: summaries}
}

func (ctl *SummaryController) Get(c *gin.Context) {
	summary, err := ctl.summaries.Build(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
