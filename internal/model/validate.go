package model

import (
	"errors"
	"fmt"
)

// ErrValidation marks a record that breaks a presence or range constraint.
var ErrValidation = errors.New("validation failed")

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}

// Validate checks the constraints the store relies on.
func (c *Car) Validate() error {
	if c.Model == "" {
		return invalid("model", "must not be empty")
	}
	return nil
}

// Validate checks the constraints the store relies on. The car is mandatory.
func (d *Document) Validate() error {
	switch {
	case d.Title == "":
		return invalid("title", "must not be empty")
	case d.Size < 0:
		return invalid("size", "must not be negative")
	case d.Car == nil:
		return invalid("car", "must not be null")
	}
	return nil
}

// Validate checks the constraints the store relies on.
func (c *Content) Validate() error {
	switch {
	case c.Data == nil && c.DataKey == "":
		return invalid("data", "must not be null")
	case c.DataContentType == "":
		return invalid("dataContentType", "must not be empty")
	}
	return nil
}
