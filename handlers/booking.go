package handlers

import (
	"net/http"
	"strings"
	"time"

	"cabtour/middleware"
	"cabtour/models"
	"cabtour/services/admin"
	"cabtour/services/booking"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves customer bookings and the admin booking desk.
type BookingHandler struct {
	Bookings booking.BookingService
	Admin    admin.AdminService
}

func NewBookingHandler(bs booking.BookingService, as admin.AdminService) *BookingHandler {
	return &BookingHandler{Bookings: bs, Admin: as}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req models.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Bookings.CreateBooking(c.Request.Context(), p, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Booking created",
		"id":               b.ID,
		"bookingReference": b.BookingReference,
		"status":           b.Status,
		"title":            b.Title,
		"price":            b.Price,
		"travelDate":       b.TravelDate,
		"booking":          b,
	})
}

// ListMyBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	list, err := h.Bookings.ListMyBookings(c.Request.Context(), p, pageFromQuery(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetBookingHandler handles GET /api/bookings/:id and /api/admin/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	view, err := h.Bookings.GetBooking(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelOwnBookingHandler handles PATCH /api/bookings/:id/cancel.
func (h *BookingHandler) CancelOwnBookingHandler(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	b, err := h.Bookings.CancelOwnBooking(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": b})
}

// VoucherHandler handles GET /api/bookings/:id/voucher.
func (h *BookingHandler) VoucherHandler(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	pdf, filename, err := h.Bookings.Voucher(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// bookingFilter reads ?status=&search=&from=&to= for the admin views.
func bookingFilter(c *gin.Context) (models.BookingFilter, error) {
	var f models.BookingFilter
	if raw := strings.TrimSpace(c.Query("status")); raw != "" && raw != "all" {
		status, err := booking.ParseStatus(raw)
		if err != nil {
			return f, utils.Validation("status", err.Error())
		}
		f.Status = status
	}
	f.Search = strings.TrimSpace(c.Query("search"))
	var err error
	if f.From, err = dateQuery(c, "from", false); err != nil {
		return f, err
	}
	if f.To, err = dateQuery(c, "to", true); err != nil {
		return f, err
	}
	return f, nil
}

// ListBookingsHandler handles GET /api/admin/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filter, err := bookingFilter(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	list, err := h.Bookings.ListBookings(c.Request.Context(), filter, pageFromQuery(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// TransitionStatusHandler handles PATCH /api/admin/bookings/:id/status.
func (h *BookingHandler) TransitionStatusHandler(c *gin.Context) {
	var req struct {
		Status     string  `json:"status" binding:"required"`
		AdminNotes *string `json:"adminNotes"`
	}
	if !bindJSON(c, &req) {
		return
	}
	to, err := booking.ParseStatus(req.Status)
	if err != nil {
		utils.RespondError(c, utils.Validation("status", err.Error()))
		return
	}
	view, err := h.Bookings.TransitionStatus(c.Request.Context(), c.Param("id"), to, req.AdminNotes)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated", "booking": view})
}

// ExportBookingsHandler handles GET /api/admin/bookings/export.
func (h *BookingHandler) ExportBookingsHandler(c *gin.Context) {
	filter, err := bookingFilter(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	data, err := h.Admin.ExportBookings(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	filename := "bookings-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
