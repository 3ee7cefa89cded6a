package domain

// ChatSession is one visitor conversation with the chatbot. The id is
// chosen by the frontend so it can resume a conversation across loads.
type ChatSession struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	CreatedAt  Millis `json:"createdAt"`
	LastActive Millis `json:"lastActive"`
}
