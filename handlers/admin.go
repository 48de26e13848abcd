package handlers

import (
	"net/http"
	"strconv"

	"cabtour/middleware"
	"cabtour/models"
	"cabtour/services/admin"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the back-office overview endpoints.
type AdminHandler struct {
	Admin admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.AdminService) *AdminHandler {
	return &AdminHandler{Admin: as}
}

// DashboardHandler handles GET /api/admin/dashboard.
func (ah *AdminHandler) DashboardHandler(c *gin.Context) {
	d, err := ah.Admin.Dashboard(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to build dashboard", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// LoginHistoryHandler handles GET /api/admin/login-history?principalId=&limit=.
// Admins see their own sign-ins; superadmins may look up anyone.
func (ah *AdminHandler) LoginHistoryHandler(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	target := c.DefaultQuery("principalId", p.ID)
	if target != p.ID && p.Role != models.RoleSuperAdmin {
		utils.RespondError(c, utils.Forbidden("only a superadmin may view other accounts' sign-ins"))
		return
	}
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	records, err := ah.Admin.LoginHistory(c.Request.Context(), target, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"principalId": target, "logins": records})
}
