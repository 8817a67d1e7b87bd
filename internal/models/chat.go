package models

// Chat is a conversation summary. Individual messages are not stored.
type Chat struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LastMessage string `json:"last_message"`
	Timestamp   string `json:"timestamp"`
}

// ChatMessage is a single line of a conversation as the frontend renders it.
type ChatMessage struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// ChatResponse is the wire shape of a chat in the chat list.
type ChatResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	LastMessage string        `json:"lastMessage"`
	Timestamp   string        `json:"timestamp"`
	Messages    []ChatMessage `json:"messages"`
}
