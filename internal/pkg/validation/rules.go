package validation

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// Register installs the custom binding rules on gin's validator engine.
// Must be called once before the router starts handling requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("pastorpresent", pastOrPresent)
}

// pastOrPresent accepts date-only strings that do not lie in the future.
// Parse failures are left for the datetime rule to report.
func pastOrPresent(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok || value == "" {
		return true
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return true
	}
	// ISO dates compare lexicographically
	return value <= time.Now().Format(DateLayout)
}
