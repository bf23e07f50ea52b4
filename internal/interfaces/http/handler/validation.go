package handler

import (
	"errors"

	"github.com/conta/backend/internal/domain/fiscal"
	domain "github.com/conta/backend/internal/domain/ledger"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the domain formats to gin's binding validator.
// "period" accepts the canonical "YYYYQ#" label and "activity" the known
// activity codes.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	if err := v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		_, err := fiscal.ParsePeriod(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}

	return v.RegisterValidation("activity", func(fl validator.FieldLevel) bool {
		return domain.Activity(fl.Field().String()).IsValid()
	})
}
