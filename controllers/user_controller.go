package controllers

import (
	"net/http"

	"github.com/otterable/minifitna/middlewares"
	"github.com/otterable/minifitna/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	profiles *services.ProfileService
}

func NewUserController(profiles *services.ProfileService) *UserController {
	return &UserController{profiles: profiles}
}

func (ctl *UserController) GetMe(c *gin.Context) {
	profile, err := ctl.profiles.Get(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMe replaces the four goal fields. Omitted fields go back to
// their defaults rather than keeping the stored value.
func (ctl *UserController) UpdateMe(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	profile, err := ctl.profiles.Update(middlewares.UserID(c), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
