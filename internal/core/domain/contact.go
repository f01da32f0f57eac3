package domain

import "time"

// ContactStatus tracks whether the admin answered a contact message.
type ContactStatus string

const (
	ContactNew     ContactStatus = "new"
	ContactReplied ContactStatus = "replied"
)

// ContactMessage is a submission of the public contact form.
type ContactMessage struct {
	ContactID string        `json:"contactID"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	Reply     string        `json:"reply"`
	RepliedAt *time.Time    `json:"repliedAt"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Notification is an outbound e-mail handed to the mail-send collaborator.
type Notification struct {
	ToName  string
	ToEmail string
	ReplyTo string
	Subject string
	Body    string
}
