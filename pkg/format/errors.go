package format

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/dietlog/pkg/category"
)

// ErrValidation matches every error returned by Format.
var ErrValidation = errors.New("format: validation failed")

// ValidationError describes one missing, malformed or out of range field.
type ValidationError struct {
	Category category.Category
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Category, e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors aggregates several field problems of one input.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "\n")
}

func (errs ValidationErrors) Is(target error) bool {
	return target == ErrValidation && len(errs) > 0
}

type collector struct {
	category category.Category
	errs     ValidationErrors
}

func (c *collector) add(field, format string, args ...any) {
	c.errs = append(c.errs, &ValidationError{
		Category: c.category,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *collector) err() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	default:
		return c.errs
	}
}
