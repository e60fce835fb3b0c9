package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// newValidator returns a validator with the workday specific tags registered.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		return name
	})
	// Registration only fails on empty tags or nil functions.
	_ = v.RegisterValidation("duration", validateDuration)
	_ = v.RegisterValidation("cronspec", validateCronSpec)
	_ = v.RegisterValidation("location", validateLocation)
	_ = v.RegisterValidation("yearpattern", validateYearPattern)
	_ = v.RegisterValidation("listenaddr", validateListenAddr)
	return v
}

func validateDuration(fl validator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())
	return err == nil && d > 0
}

func validateCronSpec(fl validator.FieldLevel) bool {
	_, err := cron.ParseStandard(fl.Field().String())
	return err == nil
}

func validateLocation(fl validator.FieldLevel) bool {
	_, err := loadLocation(fl.Field().String())
	return err == nil
}

func validateYearPattern(fl validator.FieldLevel) bool {
	pattern := fl.Field().String()
	if strings.Count(pattern, "%") != 1 || !strings.Contains(pattern, "%d") {
		return false
	}
	u, err := url.ParseRequestURI(fmt.Sprintf(pattern, 2000))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateListenAddr(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())
	return err == nil && port != ""
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == DefaultTimezone {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// validateSchema checks s and translates validator failures into one readable error.
func validateSchema(v *validator.Validate, s *fileSchema) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, translate(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func translate(fe validator.FieldError) string {
	_, field, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_with":
		return fmt.Sprintf("%s is required when %s is set", field, fe.Param())
	case "duration":
		return fmt.Sprintf("%s must be a positive duration, got %q", field, fe.Value())
	case "cronspec":
		return fmt.Sprintf("%s must be a standard cron expression, got %q", field, fe.Value())
	case "location":
		return fmt.Sprintf("%s must be an IANA time zone, got %q", field, fe.Value())
	case "yearpattern":
		return fmt.Sprintf("%s must be an http(s) URL with exactly one %%d year placeholder", field)
	case "listenaddr":
		return fmt.Sprintf("%s must be a host:port address, got %q", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fe.Error()
	}
}
