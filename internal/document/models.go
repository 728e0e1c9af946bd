package document

import "time"

// Document is a persisted LaTeX source record. Field names follow the wire
// format the frontend already speaks (snake_case in both JSON and BSON).
type Document struct {
	ID         string                 `json:"id" bson:"id"`
	Title      string                 `json:"title" bson:"title"`
	Content    string                 `json:"content" bson:"content"`
	TemplateID *string                `json:"template_id,omitempty" bson:"template_id,omitempty"`
	CreatedAt  time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at" bson:"updated_at"`
	Tags       []string               `json:"tags" bson:"tags"`
	IsPublic   bool                   `json:"is_public" bson:"is_public"`
	Metadata   map[string]interface{} `json:"metadata" bson:"metadata"`
}

// CreateRequest is the POST /api/documents payload.
type CreateRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content"`
	TemplateID *string  `json:"template_id,omitempty"`
	Tags       []string `json:"tags"`
}

// UpdateRequest is the PUT /api/documents/:id payload. Every field is a
// pointer so "omitted" is distinguishable from "set to the zero value";
// only non-nil fields are written.
type UpdateRequest struct {
	Title    *string                 `json:"title,omitempty"`
	Content  *string                 `json:"content,omitempty"`
	Tags     *[]string               `json:"tags,omitempty"`
	Metadata *map[string]interface{} `json:"metadata,omitempty"`
}
