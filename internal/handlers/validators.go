package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators teaches gin's validator about decimals and the custom
// tags used by the request DTOs. Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// required sees the sign, so a zero decimal counts as missing.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.Sign()
			}
			return nil
		}, decimal.Decimal{})

		v.RegisterTagNameFunc(fieldName)

		_ = v.RegisterValidation("txnkind", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseTransactionKind(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("amount", validAmount)
		_ = v.RegisterValidation("frequency", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseFrequency(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("targetstatus", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseTargetStatus(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseDate("date", fl.Field().String())
			return err == nil
		})
	})
}

// validAmount applies domain.ValidateAmount to a decimal field. The type func
// above has already replaced the field with its sign, so the raw value is
// read back from the parent struct.
func validAmount(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	for parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}
	d, ok := parent.FieldByName(fl.StructFieldName()).Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return domain.ValidateAmount(fl.FieldName(), d) == nil
}

// fieldName reports the json (or form) name of a field in validation errors.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// bindingErrorMessage turns a bind/validation failure into a short message.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format: " + err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required and must be non-zero", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "txnkind":
		return fmt.Sprintf("%s must be inflow or outflow", field)
	case "amount":
		return fmt.Sprintf("%s must be greater than 0 with at most %d decimal places and %d integer digits",
			field, domain.AmountScale, domain.AmountIntegerDigits)
	case "frequency":
		return fmt.Sprintf("%s must be one of [daily weekly monthly yearly]", field)
	case "targetstatus":
		return fmt.Sprintf("%s must be ongoing or completed", field)
	case "calendardate":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", field)
	case "datetime":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
