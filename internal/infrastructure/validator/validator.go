package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

const (
	maxIDLength    = 128
	maxTitleLength = 200
)

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecasecontract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	if err := registerOn(v); err != nil {
		panic(err)
	}
	return &AppValidator{validate: v}
}

// ValidateID checks that an item or client id is present, bounded and printable.
func (av *AppValidator) ValidateID(id string) error {
	err := av.validate.Var(id, fmt.Sprintf("required,max=%d,printascii", maxIDLength))
	if err != nil || strings.ContainsAny(id, " ") {
		return fmt.Errorf("id must be 1-%d printable characters without spaces", maxIDLength)
	}
	return nil
}

// ValidateTitle checks the title of an item.
func (av *AppValidator) ValidateTitle(title string) error {
	if err := av.validate.Var(title, fmt.Sprintf("required,max=%d", maxTitleLength)); err != nil {
		return fmt.Errorf("title must be 1-%d characters", maxTitleLength)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return fmt.Errorf("title must not contain control characters")
		}
	}
	return nil
}

// customValidations are the binding tags added on top of the go-playground defaults.
var customValidations = map[string]validator.Func{
	"voteaction": voteActionFL,
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin binding engine is %T, want *validator.Validate", binding.Validator.Engine())
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}

// voteActionFL accepts "like" and "dislike".
func voteActionFL(fl validator.FieldLevel) bool {
	return entity.VoteAction(fl.Field().String()).IsValid()
}
