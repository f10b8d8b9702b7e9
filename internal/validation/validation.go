package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/kunal2217/employee-registration/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Validator checks step payloads against their field constraints. It is pure:
// no I/O, safe for concurrent use. The same instance is used at step-save
// time and again at final-submission time to defend against stale or
// corrupted staged data.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// report fields under their json names so error details match the wire format
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// expose decimal fields as float64 so the builtin gte/lte tags apply
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// expose domain.Date as time.Time for required and pastdate checks
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(domain.Date); ok {
			return d.Time
		}
		return nil
	}, domain.Date{})

	if err := validate.RegisterValidation("phone10", validatePhone10); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("pastdate", validatePastDate); err != nil {
		return nil, err
	}

	if err := registerTranslation(validate, trans, "phone10", "{0} must be exactly 10 digits"); err != nil {
		return nil, err
	}
	if err := registerTranslation(validate, trans, "pastdate", "{0} must not be in the future"); err != nil {
		return nil, err
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

func registerTranslation(validate *validator.Validate, trans ut.Translator, tag string, text string) error {
	return validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return t
		},
	)
}

func validatePhone10(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if len(phone) != 10 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func validatePastDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.After(time.Now())
}

func (v *Validator) Personal(p *domain.PersonalInfo) error {
	return v.check(domain.StepPersonal, p)
}

func (v *Validator) Education(e *domain.EducationInfo) error {
	return v.check(domain.StepEducation, e)
}

func (v *Validator) Experience(e *domain.ExperienceInfo) error {
	return v.check(domain.StepExperience, e)
}

func (v *Validator) Employee(e *domain.Employee) error {
	return v.check("employee", e)
}

// check runs the struct validation and converts the result into a
// ValidationFailedError listing every violated field, not just the first.
func (v *Validator) check(step domain.Step, s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, domain.FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(v.translator),
		})
	}

	return &domain.ValidationFailedError{Step: step, Fields: fields}
}
