package validation

import (
	"errors"
	"strings"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// fieldNames maps struct fields to the names used in client messages.
var fieldNames = map[string]string{
	"UserID":    "User ID",
	"SleepDate": "Sleep date",
	"BedTime":   "Bed time",
	"WakeTime":  "Wake time",
	"Feeling":   "Feeling",
}

// ValidateCreateSleepLog checks a create request and returns an
// ErrInvalidArgument error listing every failing field.
func ValidateCreateSleepLog(req *domain.CreateSleepLogRequest) error {
	if req == nil {
		return domain.NewError(domain.ErrInvalidArgument, "Request body cannot be null")
	}
	return Validate(req)
}

// Validate validates a struct against its validate tags.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domain.WrapError(domain.ErrInvalidArgument, err, "Invalid request")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, getValidationMessage(fe))
	}
	return domain.NewError(domain.ErrInvalidArgument, "%s", strings.Join(messages, ", "))
}

func getValidationMessage(fe validator.FieldError) string {
	name := displayName(fe.StructField())
	switch fe.Tag() {
	case "required":
		return name + " cannot be null"
	case "datetime":
		return name + " must be a valid date (YYYY-MM-DD)"
	case "gtfield":
		return name + " must be after " + strings.ToLower(displayName(fe.Param()))
	case "oneof":
		return name + " must be one of: " + fe.Param()
	default:
		return name + " is invalid"
	}
}

func displayName(field string) string {
	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
