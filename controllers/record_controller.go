package controllers

import (
	"net/http"

	"github.com/otterable/minifitna/middlewares"
	"github.com/otterable/minifitna/services"

	"github.com/gin-gonic/gin"
)

type WeightInput struct {
	Day      string   `json:"day"`
	WeightKg *float64 `json:"weight_kg" binding:"required"`
}

type RunInput struct {
	Day         string   `json:"day"`
	DistanceKm  *float64 `json:"distance_km" binding:"required"`
	DurationMin *float64 `json:"duration_min" binding:"required"`
}

type RecordController struct {
	records *services.RecordService
}

func NewRecordController(records *services.RecordService) *RecordController {
	return &RecordController{records: records}
}

func (ctl *RecordController) ListWeights(c *gin.Context) {
	entries, err := ctl.records.ListWeights(middlewares.UserID(c), c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ctl *RecordController) AddWeight(c *gin.Context) {
	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	entry, err := ctl.records.UpsertWeight(middlewares.UserID(c), input.Day, *input.WeightKg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "day": entry.Day, "weight_kg": entry.WeightKg})
}

func (ctl *RecordController) ListRuns(c *gin.Context) {
	entries, err := ctl.records.ListRuns(middlewares.UserID(c), c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ctl *RecordController) AddRun(c *gin.Context) {
	var input RunInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	entry, err := ctl.records.UpsertRun(middlewares.UserID(c), input.Day, *input.DistanceKm, *input.DurationMin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"day":          entry.Day,
		"distance_km":  entry.DistanceKm,
		"duration_min": entry.DurationMin,
	})
}
