package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Resume represents an uploaded resume. RawText is the plain text extracted
// upstream (file-format parsing is not this system's concern).
type Resume struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	FileName  string          `json:"file_name,omitempty"`
	RawText   string          `json:"-"`
	ATSScore  *int            `json:"ats_score,omitempty"`
	Analysis  *ResumeAnalysis `json:"analysis,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateResumeRequest represents the request to store a resume's plain text.
type CreateResumeRequest struct {
	FileName string `json:"file_name,omitempty"`
	RawText  string `json:"raw_text" validate:"required,min=1"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
