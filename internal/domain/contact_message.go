package domain

// ContactMessage is a contact form submission, kept until an admin
// deletes it.
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp Millis `json:"timestamp"`
	Read      bool   `json:"read"`
}
