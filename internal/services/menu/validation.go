package menu

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"qr-menu/internal/models"
)

var validate = validator.New()

// ValidationError reports a user-correctable problem with a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateItemRequest checks required fields and category membership for
// create and update calls. Fields are trimmed in place; a value that is blank
// after trimming is rejected the same as a missing one.
func ValidateItemRequest(req *models.ItemRequest) (models.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Size = strings.TrimSpace(req.Size)
	req.Price = strings.TrimSpace(req.Price)
	req.Category = strings.TrimSpace(req.Category)
	req.Image = strings.TrimSpace(req.Image)
	req.Description = strings.TrimSpace(req.Description)

	if err := validate.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			field := strings.ToLower(fieldErrs[0].Field())
			return "", ValidationError{Field: field, Message: field + " is required"}
		}
		return "", err
	}

	cat, err := models.ParseCategory(req.Category)
	if err != nil {
		return "", err
	}

	return cat, nil
}
