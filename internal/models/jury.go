package models

import (
	"github.com/go-playground/validator/v10"
)

// Jury is an evaluating panel identified by name. HasSubmitted and Paused
// are stored independently; readers derive a single status from them with
// Submitted taking precedence. SubmittedAt is unix seconds, nil until the
// first submission.
type Jury struct {
	Name         string `db:"name" json:"name" validate:"required"`
	HasSubmitted bool   `db:"has_submitted" json:"hasSubmitted"`
	Paused       bool   `db:"paused" json:"paused"`
	SubmittedAt  *int64 `db:"submitted_at" json:"submittedAt"`
}

func (j *Jury) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
