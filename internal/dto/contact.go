package dto

import (
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// CreateContactRequest is the public contact form submission.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Message string `json:"message" binding:"required,max=5000"`
}

// ReplyContactRequest is an admin reply to a contact message.
type ReplyContactRequest struct {
	Message string `json:"message" binding:"required,max=10000"`
}

// ContactResponse defines the data returned for a contact message.
type ContactResponse struct {
	ContactID string               `json:"contactID"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone"`
	Message   string               `json:"message"`
	Status    domain.ContactStatus `json:"status"`
	Reply     string               `json:"reply,omitempty"`
	RepliedAt *time.Time           `json:"repliedAt,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ContactResultResponse wraps a stored message with the notification outcome.
type ContactResultResponse struct {
	Contact      ContactResponse       `json:"contact"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

// ToContactResponse converts a domain.ContactMessage to ContactResponse DTO
func ToContactResponse(c *domain.ContactMessage) ContactResponse {
	return ContactResponse{
		ContactID: c.ContactID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		Status:    c.Status,
		Reply:     c.Reply,
		RepliedAt: c.RepliedAt,
		CreatedAt: c.CreatedAt,
	}
}

// ToListContactResponse converts contact messages to DTOs
func ToListContactResponse(contacts []domain.ContactMessage) []ContactResponse {
	res := make([]ContactResponse, len(contacts))
	for i := range contacts {
		res[i] = ToContactResponse(&contacts[i])
	}
	return res
}

// ToNotificationResponse reports a notification attempt; nil when none was attempted.
func ToNotificationResponse(attempted bool, err error) *NotificationResponse {
	if !attempted {
		return nil
	}
	if err != nil {
		return &NotificationResponse{Sent: false, Error: err.Error()}
	}
	return &NotificationResponse{Sent: true}
}
