//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"

	apperrors "github.com/target/salonbook-ui/internal/errors"
)

// FAQ is a question/answer pair shown on the salon page.
type FAQ struct {
	ID       string `json:"_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQInput creates or replaces a FAQ.
type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate checks required fields.
func (in *FAQInput) Validate() error {
	in.Question = strings.TrimSpace(in.Question)
	in.Answer = strings.TrimSpace(in.Answer)

	fe := apperrors.FieldErrors{}
	fe.Required("question", in.Question, "Question")
	fe.Required("answer", in.Answer, "Answer")
	return fe.Err()
}
