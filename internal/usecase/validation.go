package usecase

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports struct fields by their JSON name so messages match the wire format.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
