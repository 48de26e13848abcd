package handlers

import (
	"net/http"

	"cabtour/models"
	"cabtour/services/contact"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler serves the contact form and the admin inbox.
type ContactHandler struct {
	Contacts contact.ContactService
}

func NewContactHandler(cs contact.ContactService) *ContactHandler {
	return &ContactHandler{Contacts: cs}
}

// SubmitHandler handles POST /api/contact.
func (h *ContactHandler) SubmitHandler(c *gin.Context) {
	var req models.ContactMessage
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.Contacts.Submit(c.Request.Context(), req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thanks, we will get back to you soon"})
}

// ListHandler handles GET /api/admin/contact-messages?unread=true.
func (h *ContactHandler) ListHandler(c *gin.Context) {
	msgs, pagination, err := h.Contacts.List(c.Request.Context(), boolQuery(c, "unread"), pageFromQuery(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	unread, err := h.Contacts.CountUnread(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs, "pagination": pagination, "unread": unread})
}

func (h *ContactHandler) MarkReadHandler(c *gin.Context) {
	if err := h.Contacts.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (h *ContactHandler) DeleteHandler(c *gin.Context) {
	if err := h.Contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
