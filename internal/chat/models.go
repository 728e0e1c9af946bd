package chat

import "time"

// Message is a persisted record of one chat request/response pair. The
// document_id is a weak reference: nothing checks that the document
// exists.
type Message struct {
	ID         string                 `json:"id" bson:"id"`
	DocumentID string                 `json:"document_id" bson:"document_id"`
	Message    string                 `json:"message" bson:"message"`
	Response   string                 `json:"response" bson:"response"`
	Timestamp  time.Time              `json:"timestamp" bson:"timestamp"`
	Context    map[string]interface{} `json:"context" bson:"context"`
}

// Request is the POST /api/chat payload.
type Request struct {
	DocumentID string                 `json:"document_id"`
	Message    string                 `json:"message"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// Response is the payload returned to the client. Until a real AI
// integration lands this is a fixed placeholder.
type Response struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}
