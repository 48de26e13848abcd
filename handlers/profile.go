package handlers

import (
	"net/http"

	"cabtour/middleware"
	"cabtour/models"
	"cabtour/services/user"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the signed-in customer's profile.
type ProfileHandler struct {
	Users user.UserService
}

func NewProfileHandler(us user.UserService) *ProfileHandler {
	return &ProfileHandler{Users: us}
}

// GetProfileHandler handles GET /api/profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	usr, err := h.Users.GetProfile(c.Request.Context(), p.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr, "completion": usr.Completion()})
}

// UpdateProfileHandler handles PUT /api/profile.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req models.ProfileUpdate
	if !bindJSON(c, &req) {
		return
	}
	usr, err := h.Users.UpdateProfile(c.Request.Context(), p.ID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr, "completion": usr.Completion()})
}

// CompletionHandler handles GET /api/profile/completion.
func (h *ProfileHandler) CompletionHandler(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	pc, err := h.Users.GetCompletion(c.Request.Context(), p.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pc)
}
