package template

import "time"

// Template is a reusable starter LaTeX document. Builtin templates are
// seeded once at startup; user templates may be added later with
// is_builtin false.
type Template struct {
	ID           string                 `json:"id" bson:"id"`
	Name         string                 `json:"name" bson:"name"`
	Description  string                 `json:"description" bson:"description"`
	Content      string                 `json:"content" bson:"content"`
	Category     string                 `json:"category" bson:"category"`
	PreviewImage *string                `json:"preview_image,omitempty" bson:"preview_image,omitempty"`
	CreatedAt    time.Time              `json:"created_at" bson:"created_at"`
	IsBuiltin    bool                   `json:"is_builtin" bson:"is_builtin"`
	Metadata     map[string]interface{} `json:"metadata" bson:"metadata"`
}
