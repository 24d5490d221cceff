package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SignInRequest is the sign-in form.
type SignInRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// ToggleRequest carries the value a switch should take.
type ToggleRequest struct {
	Value string `form:"value" validate:"required,oneof=true false"`
}

// NameRequest is a category or subcategory form. The image travels as a
// multipart file and is checked by the upload stager.
type NameRequest struct {
	Name string `form:"name" validate:"required,max=100"`
}

// FeeRequest upserts the fee of one hiring type.
type FeeRequest struct {
	Type string `form:"type" validate:"required,oneof=direct bidding emergency"`
	Fee  string `form:"fee" validate:"required,numeric"`
}

// ContentRequest replaces a static page.
type ContentRequest struct {
	Content string `form:"content" validate:"required"`
}

// invalid turns a validation error into the text of a failure notice.
func invalid(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Please check the form and try again."
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required."
	case "email":
		return "Please enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "numeric":
		return field + " must be a number."
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, fe.Param())
	default:
		return field + " is invalid."
	}
}

// bind decodes the request into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
