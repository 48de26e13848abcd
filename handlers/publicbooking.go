package handlers

import (
	"net/http"
	"strings"

	publicBookingRepo "cabtour/database/repository/publicbooking"
	"cabtour/models"
	"cabtour/services/publicbooking"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// PublicBookingHandler serves the no-account booking form and its admin queue.
type PublicBookingHandler struct {
	PublicBookings publicbooking.PublicBookingService
}

func NewPublicBookingHandler(ps publicbooking.PublicBookingService) *PublicBookingHandler {
	return &PublicBookingHandler{PublicBookings: ps}
}

// SubmitHandler handles POST /api/public-bookings.
func (h *PublicBookingHandler) SubmitHandler(c *gin.Context) {
	var req models.PublicBooking
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.PublicBookings.Submit(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Booking request received. We will contact you shortly.",
		"bookingReference": b.BookingReference,
		"status":           b.Status,
	})
}

// ListHandler handles GET /api/admin/public-bookings?status=&search=.
func (h *PublicBookingHandler) ListHandler(c *gin.Context) {
	filter := publicBookingRepo.PublicBookingFilter{Search: strings.TrimSpace(c.Query("search"))}
	if raw := c.Query("status"); raw != "" && raw != "all" {
		status, ok := publicbooking.ParseStatus(raw)
		if !ok {
			utils.RespondError(c, utils.Validation("status", "invalid status: "+raw))
			return
		}
		filter.Status = status
	}
	items, pagination, err := h.PublicBookings.List(c.Request.Context(), filter, pageFromQuery(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": items, "pagination": pagination})
}

func (h *PublicBookingHandler) GetHandler(c *gin.Context) {
	b, err := h.PublicBookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// TransitionHandler handles PATCH /api/admin/public-bookings/:id/status.
func (h *PublicBookingHandler) TransitionHandler(c *gin.Context) {
	var req struct {
		Status     string  `json:"status" binding:"required"`
		AdminNotes *string `json:"adminNotes"`
	}
	if !bindJSON(c, &req) {
		return
	}
	to, ok := publicbooking.ParseStatus(req.Status)
	if !ok {
		utils.RespondError(c, utils.Validation("status", "invalid status: "+req.Status))
		return
	}
	b, err := h.PublicBookings.Transition(c.Request.Context(), c.Param("id"), to, req.AdminNotes)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
