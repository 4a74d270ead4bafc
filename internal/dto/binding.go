package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations teaches the binding validator about types it does
// not understand natively. Must be called once at startup, before the first
// request is bound.
func RegisterCustomValidations(v *validator.Validate) {
	// Expose decimal.Decimal to numeric rules (gt, gte, ...) as a float64.
	// The float is only used for comparisons inside the validator; all
	// arithmetic elsewhere stays decimal.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}
