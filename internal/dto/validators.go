package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom binding validations the DTOs use.
// Call once at startup before routes are served.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// positivedecimal rejects zero and negative decimal amounts at the
	// binding layer; "required" alone cannot, since decimal zero is a valid
	// value for the type.
	_ = v.RegisterValidation("positivedecimal", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	})
}
