package handlers

import (
	"net/http"

	"cabtour/models"
	"cabtour/services/inventory"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler serves the catalogue: public reads and admin CRUD.
type InventoryHandler struct {
	Inventory inventory.InventoryService
}

func NewInventoryHandler(is inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{Inventory: is}
}

// Cabs

func (h *InventoryHandler) ListCabsHandler(c *gin.Context) {
	cabs, err := h.Inventory.ListCabs(c.Request.Context(), c.Param("category"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cabs": cabs, "count": len(cabs)})
}

func (h *InventoryHandler) GetCabHandler(c *gin.Context) {
	cab, err := h.Inventory.GetCab(c.Request.Context(), c.Param("category"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cab)
}

func (h *InventoryHandler) CreateCabHandler(c *gin.Context) {
	var req models.CabOffering
	if !bindJSON(c, &req) {
		return
	}
	cab, err := h.Inventory.CreateCab(c.Request.Context(), c.Param("category"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cab)
}

func (h *InventoryHandler) UpdateCabHandler(c *gin.Context) {
	var req models.CabOffering
	if !bindJSON(c, &req) {
		return
	}
	cab, err := h.Inventory.UpdateCab(c.Request.Context(), c.Param("category"), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cab)
}

func (h *InventoryHandler) DeleteCabHandler(c *gin.Context) {
	if err := h.Inventory.DeleteCab(c.Request.Context(), c.Param("category"), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cab deleted"})
}

// Routes

func (h *InventoryHandler) ListRoutesHandler(c *gin.Context) {
	routes, err := h.Inventory.ListRoutes(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes, "count": len(routes)})
}

func (h *InventoryHandler) GetRouteHandler(c *gin.Context) {
	route, err := h.Inventory.GetRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *InventoryHandler) GetRouteBySlugHandler(c *gin.Context) {
	route, err := h.Inventory.GetRouteBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *InventoryHandler) CreateRouteHandler(c *gin.Context) {
	var req models.RouteOffering
	if !bindJSON(c, &req) {
		return
	}
	route, err := h.Inventory.CreateRoute(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

func (h *InventoryHandler) UpdateRouteHandler(c *gin.Context) {
	var req models.RouteOffering
	if !bindJSON(c, &req) {
		return
	}
	route, err := h.Inventory.UpdateRoute(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *InventoryHandler) DeleteRouteHandler(c *gin.Context) {
	if err := h.Inventory.DeleteRoute(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route deleted"})
}

// Tours

func (h *InventoryHandler) ListToursHandler(c *gin.Context) {
	tours, err := h.Inventory.ListTours(c.Request.Context(), c.Query("tag"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours, "count": len(tours)})
}

func (h *InventoryHandler) GetTourHandler(c *gin.Context) {
	tour, err := h.Inventory.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *InventoryHandler) GetTourBySlugHandler(c *gin.Context) {
	tour, err := h.Inventory.GetTourBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *InventoryHandler) CreateTourHandler(c *gin.Context) {
	var req models.TourOffering
	if !bindJSON(c, &req) {
		return
	}
	tour, err := h.Inventory.CreateTour(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tour)
}

func (h *InventoryHandler) UpdateTourHandler(c *gin.Context) {
	var req models.TourOffering
	if !bindJSON(c, &req) {
		return
	}
	tour, err := h.Inventory.UpdateTour(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *InventoryHandler) DeleteTourHandler(c *gin.Context) {
	if err := h.Inventory.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tour deleted"})
}

// Reviews

// ListReviewsHandler serves active reviews publicly and all reviews to admins.
func (h *InventoryHandler) ListReviewsHandler(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := h.Inventory.ListReviews(c.Request.Context(), activeOnly)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
	}
}

func (h *InventoryHandler) CreateReviewHandler(c *gin.Context) {
	var req models.Review
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.Inventory.CreateReview(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *InventoryHandler) UpdateReviewHandler(c *gin.Context) {
	var req models.Review
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.Inventory.UpdateReview(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// SetReviewActiveHandler handles PATCH /api/admin/reviews/:id/active.
func (h *InventoryHandler) SetReviewActiveHandler(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	review, err := h.Inventory.SetReviewActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *InventoryHandler) DeleteReviewHandler(c *gin.Context) {
	if err := h.Inventory.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
