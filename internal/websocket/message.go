package websocket

import "encoding/json"

// Message defines the structure for websocket messages.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// NewBlogPublishedMessage builds the broadcast sent when a new blog
// post is generated.
func NewBlogPublishedMessage(blog interface{}) []byte {
	msg, _ := json.Marshal(Message{Action: "blog_published", Payload: blog})
	return msg
}

// NewChatReplyMessage builds the reply pushed to a chat subscriber.
func NewChatReplyMessage(reply string) []byte {
	msg, _ := json.Marshal(Message{Action: "chat_reply", Payload: map[string]string{"reply": reply}})
	return msg
}

// NewErrorMessage builds an error frame for a client.
func NewErrorMessage(message string) []byte {
	msg, _ := json.Marshal(Message{Action: "error", Payload: map[string]string{"message": message}})
	return msg
}
