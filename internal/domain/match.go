package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MaxMatchPairs is the number of pairs a quiz is built from.
const MaxMatchPairs = 5

// MatchPair is one "match the following" item.
type MatchPair struct {
	Term       string `json:"term" validate:"required,notblank"`
	Definition string `json:"definition" validate:"required,notblank"`
}

// MatchPairsResponse is the body returned by the generate-matches endpoint.
type MatchPairsResponse struct {
	Pairs []MatchPair `json:"pairs"`
}

var pairValidator = newPairValidator()

func newPairValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// notblank is a built-in function, registration cannot fail
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// Validate reports the first field that is empty or whitespace only.
func (p MatchPair) Validate() error {
	err := pairValidator.Struct(p)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{Field: fieldErrs[0].Field(), Message: "must not be blank"}
	}
	return err
}
