package inventory

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate   *validator.Validate
	digitsISBN = regexp.MustCompile(`^[0-9]+$`)
)

func init() {
	validate = validator.New()

	validate.RegisterValidation("isbn", validateISBN)
	validate.RegisterValidation("finite", validateFinite)
	validate.RegisterValidation("notblank", validateNotBlank)
}

func validateISBN(fl validator.FieldLevel) bool {
	return digitsISBN.MatchString(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors lists every rule a book broke. It matches ErrInvalidBook
// with errors.Is.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return ErrInvalidBook.Error() + ": " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() error {
	return ErrInvalidBook
}

// Validate checks a book against the record constraints. It returns nil or a
// ValidationErrors value.
func Validate(b Book) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: message(fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return out
}

func message(field, tag, param string) string {
	switch tag {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "isbn":
		return fmt.Sprintf("%s must contain digits only", field)
	case "number", "finite":
		return fmt.Sprintf("%s must be a number", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func fieldError(field, tag, param string) ValidationErrors {
	return ValidationErrors{{Field: strings.ToLower(field), Message: message(field, tag, param)}}
}

// ParseISBN validates operator input for the ISBN field.
func ParseISBN(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fieldError("ISBN", "required", "")
	}
	if err := validate.Var(s, "isbn"); err != nil {
		return "", fieldError("ISBN", "isbn", "")
	}
	return s, nil
}

// ParseText validates a required free-text field such as Title or Author.
func ParseText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required"); err != nil {
		return "", fieldError(field, "required", "")
	}
	return s, nil
}

// ParsePrice parses a non-negative decimal price.
func ParsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fieldError("Price", "number", "")
	}
	if err := validate.Var(price, "finite"); err != nil {
		return 0, fieldError("Price", "finite", "")
	}
	if err := validate.Var(price, "gte=0"); err != nil {
		return 0, fieldError("Price", "gte", "0")
	}
	return price, nil
}

// ParseQuantity parses a positive whole quantity.
func ParseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fieldError("Quantity", "number", "")
	}
	if err := validate.Var(qty, "gte=1"); err != nil {
		return 0, fieldError("Quantity", "gte", "1")
	}
	return qty, nil
}
