package models

import (
	"github.com/go-playground/validator/v10"
)

type Team struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name" validate:"required"`
	Category string `db:"category" json:"category"`
}

func (t *Team) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}
