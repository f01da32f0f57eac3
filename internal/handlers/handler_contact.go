package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contactHandler serves the public contact form and the admin inbox.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// registerPublicContactRoutes exposes the contact form behind its own rate limit.
func registerPublicContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade, limit gin.HandlerFunc) {
	h := newContactHandler(contactService)
	rg.POST("/contact", limit, h.submitContact)
}

func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)

	contacts := rg.Group("/contacts")
	{
		contacts.GET("", h.listContacts)
		contacts.GET("/:contactID", h.getContact)
		contacts.POST("/:contactID/reply", h.replyToContact)
		contacts.DELETE("/:contactID", h.deleteContact)
	}
}

// submitContact godoc
// @Summary Send a message through the contact form
// @Description Public endpoint. The owner is e-mailed; a failed e-mail does not lose the message.
// @Tags contact
// @Accept  json
// @Produce  json
// @Param   message body dto.CreateContactRequest true "Message"
// @Success 201 {object} dto.ContactResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /contact [post]
func (h *contactHandler) submitContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContactRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	contact, outcome, err := h.contactService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Contact message", "submit contact message")
		return
	}

	logger.Info("Contact message received", slog.String("contact_id", contact.ContactID))
	c.JSON(http.StatusCreated, dto.ContactResultResponse{
		Contact:      dto.ToContactResponse(contact),
		Notification: dto.ToNotificationResponse(outcome.Attempted, outcome.Err),
	})
}

// listContacts godoc
// @Summary List contact messages
// @Tags contact
// @Produce  json
// @Success 200 {array} dto.ContactResponse
// @Security BearerAuth
// @Router /contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	contacts, err := h.contactService.ListContacts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Contact message", "list contact messages")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContactResponse(contacts))
}

// getContact godoc
// @Summary Get a contact message
// @Tags contact
// @Produce  json
// @Param   contactID path string true "Contact message ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contacts/{contactID} [get]
func (h *contactHandler) getContact(c *gin.Context) {
	contactID := c.Param("contactID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("contact_id", contactID))

	contact, err := h.contactService.GetContactByID(c.Request.Context(), contactID)
	if err != nil {
		respondServiceError(c, logger, err, "Contact message", "retrieve contact message")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

// replyToContact godoc
// @Summary Reply to a contact message
// @Description Stores the reply, marks the message replied and e-mails the sender
// @Tags contact
// @Accept  json
// @Produce  json
// @Param   contactID path string true "Contact message ID"
// @Param   reply body dto.ReplyContactRequest true "Reply"
// @Success 200 {object} dto.ContactResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contacts/{contactID}/reply [post]
func (h *contactHandler) replyToContact(c *gin.Context) {
	contactID := c.Param("contactID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("contact_id", contactID))
	var req dto.ReplyContactRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	replierID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	contact, outcome, err := h.contactService.ReplyToContact(c.Request.Context(), contactID, req, replierID)
	if err != nil {
		respondServiceError(c, logger, err, "Contact message", "reply to contact message")
		return
	}

	logger.Info("Contact message replied")
	c.JSON(http.StatusOK, dto.ContactResultResponse{
		Contact:      dto.ToContactResponse(contact),
		Notification: dto.ToNotificationResponse(outcome.Attempted, outcome.Err),
	})
}

// deleteContact godoc
// @Summary Delete a contact message
// @Tags contact
// @Param   contactID path string true "Contact message ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contacts/{contactID} [delete]
func (h *contactHandler) deleteContact(c *gin.Context) {
	contactID := c.Param("contactID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("contact_id", contactID))

	if err := h.contactService.DeleteContact(c.Request.Context(), contactID); err != nil {
		respondServiceError(c, logger, err, "Contact message", "delete contact message")
		return
	}
	c.Status(http.StatusNoContent)
}
