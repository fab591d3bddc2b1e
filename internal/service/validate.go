package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

	// maxMoney is the first value that no longer fits NUMERIC(10, 2).
	maxMoney = decimal.New(1, 8)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("shipment_status", func(fl validator.FieldLevel) bool {
		return model.ShipmentStatus(fl.Field().String()).Valid()
	})

	return v
}

// validateRequest checks req against its struct tags and reports every failing
// field in one ValidationError.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	fields := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, model.FieldError{Field: fe.Field(), Reason: reason(fe)})
	}
	return model.NewValidationError(model.ErrCodeValidationFailed, "request validation failed", fields...)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "slug":
		return "must contain only lowercase letters, digits and single hyphens"
	case "shipment_status":
		return "must be one of Pending, Shipped, In Transit, Delivered, Returned"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// parseID parses an identifier supplied in field.
func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, model.InvalidIdentifier(field, raw)
	}
	return id, nil
}

// checkMoney validates a two-place currency amount.
func checkMoney(field string, amount decimal.Decimal) error {
	var r string
	switch {
	case amount.IsNegative():
		r = "must not be negative"
	case !amount.Equal(amount.Round(2)):
		r = "must have at most 2 decimal places"
	case amount.GreaterThanOrEqual(maxMoney):
		r = "must be less than " + maxMoney.String()
	default:
		return nil
	}
	return model.NewValidationError(model.ErrCodeValidationFailed, "invalid "+field,
		model.FieldError{Field: field, Reason: r})
}

// slugify derives a URL slug from a display name.
func slugify(name string) string {
	return strings.Trim(nonSlugPattern.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// notFound maps a repository miss to the domain error for entity id.
func notFound(err error, entity string, id uuid.UUID) error {
	if errors.Is(err, repository.ErrNotFound) {
		return model.EntityNotFound(entity, id)
	}
	return err
}
