// Package validate is the client-side validation boundary: anything that
// fails here is rejected before a request is built, no lifecycle signal,
// no slice mutation.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"quickbite-client/internal/api"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// ErrValidation 所有本地校验错误的哨兵，errors.Is 可判。
var ErrValidation = errors.New("validation failed")

type commentInput struct {
	ProduitID int64  `validate:"required,gt=0"`
	Content   string `validate:"required"`
	Rating    int    `validate:"required,gte=1,lte=5"`
}

func Comment(produitID int64, content string, rating int) error {
	in := commentInput{ProduitID: produitID, Content: strings.TrimSpace(content), Rating: rating}
	if err := v.Struct(in); err != nil {
		return describe(err, map[string]string{
			"ProduitID": "a product is required",
			"Content":   "comment cannot be empty",
			"Rating":    "rating must be between 1 and 5",
		})
	}
	return nil
}

type registerInput struct {
	Username             string `validate:"required,max=64"`
	Email                string `validate:"required,email"`
	Password             string `validate:"required,min=8"`
	PasswordConfirmation string `validate:"required,eqfield=Password"`
	Adresse              string `validate:"required"`
}

func Register(in api.RegisterInput) error {
	r := registerInput{
		Username:             strings.TrimSpace(in.Username),
		Email:                strings.TrimSpace(in.Email),
		Password:             in.Password,
		PasswordConfirmation: in.PasswordConfirmation,
		Adresse:              strings.TrimSpace(in.Adresse),
	}
	if err := v.Struct(r); err != nil {
		return describe(err, map[string]string{
			"Username":             "username is required",
			"Email":                "a valid email is required",
			"Password":             "password must be at least 8 characters",
			"PasswordConfirmation": "passwords do not match",
			"Adresse":              "address is required",
		})
	}
	return nil
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func Login(email, password string) error {
	in := loginInput{Email: strings.TrimSpace(email), Password: password}
	if err := v.Struct(in); err != nil {
		return describe(err, map[string]string{
			"Email":    "a valid email is required",
			"Password": "password is required",
		})
	}
	return nil
}

// describe 把 validator 的第一条字段错误翻译成能直接展示的文案。
func describe(err error, messages map[string]string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := messages[verrs[0].Field()]; ok {
			return fmt.Errorf("%w: %s", ErrValidation, msg)
		}
		return fmt.Errorf("%w: %s is invalid", ErrValidation, strings.ToLower(verrs[0].Field()))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
