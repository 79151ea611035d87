// Package validation gates usecase inputs before any repository is touched.
//
// Rules are chained and the first failure sticks:
//
//	err := v.Check().Username(name).Password(pw).Email(email).Err()
package validation

import (
	"fmt"

	domainerrors "its/internal/domain/errors"
	"its/internal/domain/service"

	"github.com/go-playground/validator/v10"
)

// DefaultMinPasswordLength applies when no minimum is configured.
const DefaultMinPasswordLength = 8

// Validator holds the configured rule set.
type Validator struct {
	validate          *validator.Validate
	minPasswordLength int
}

// New builds a Validator. A non-positive minPasswordLength falls back to DefaultMinPasswordLength.
func New(minPasswordLength int) *Validator {
	if minPasswordLength <= 0 {
		minPasswordLength = DefaultMinPasswordLength
	}

	return &Validator{
		validate:          validator.New(validator.WithRequiredStructEnabled()),
		minPasswordLength: minPasswordLength,
	}
}

// MinPasswordLength returns the configured minimum.
func (v *Validator) MinPasswordLength() int {
	return v.minPasswordLength
}

// Check starts a new rule chain.
func (v *Validator) Check() *Chain {
	return &Chain{v: v}
}

// Chain accumulates the first failing rule.
type Chain struct {
	v   *Validator
	err error
}

// Err returns the first failure as a VALIDATION_FAILED AppError, or nil.
func (c *Chain) Err() error {
	return c.err
}

func (c *Chain) rule(value any, tag, message string) *Chain {
	if c.err != nil {
		return c
	}
	if err := c.v.validate.Var(value, tag); err != nil {
		c.err = domainerrors.ErrValidationFailed.WithDetails(message)
	}

	return c
}

// Username requires a non-empty username.
func (c *Chain) Username(username string) *Chain {
	return c.rule(username, "required", "username must not be empty")
}

// Password requires at least the configured number of characters and at most
// service.MaxPasswordBytes bytes.
func (c *Chain) Password(password string) *Chain {
	c.rule(password, fmt.Sprintf("min=%d", c.v.minPasswordLength),
		fmt.Sprintf("password must be at least %d characters long", c.v.minPasswordLength))

	return c.rule(len(password), fmt.Sprintf("lte=%d", service.MaxPasswordBytes),
		fmt.Sprintf("password must not exceed %d bytes", service.MaxPasswordBytes))
}

// Email requires a non-empty value containing "@".
func (c *Chain) Email(email string) *Chain {
	return c.rule(email, "required,contains=@", "email must contain '@'")
}

// Payload requires a strictly positive cargo mass.
func (c *Chain) Payload(payload float64) *Chain {
	return c.rule(payload, "gt=0", "payload must be positive")
}

// PlanetName requires a non-empty planet name.
func (c *Chain) PlanetName(name string) *Chain {
	return c.rule(name, "required", "planet name must not be empty")
}

// Coordinate requires a non-negative map coordinate.
func (c *Chain) Coordinate(coordinate int64) *Chain {
	return c.rule(coordinate, "gte=0", "planet coordinates must not be negative")
}

// ShipName requires a non-empty ship name.
func (c *Chain) ShipName(name string) *Chain {
	return c.rule(name, "required", "space ship name must not be empty")
}

// ShipLevel requires a level of at least 1.
func (c *Chain) ShipLevel(level int) *Chain {
	return c.rule(level, "gte=1", "space ship level must be at least 1")
}

// ShipSpeed requires a strictly positive speed.
func (c *Chain) ShipSpeed(speed float64) *Chain {
	return c.rule(speed, "gt=0", "space ship speed must be positive")
}

// CargoCapacity requires a strictly positive cargo capacity.
func (c *Chain) CargoCapacity(capacity float64) *Chain {
	return c.rule(capacity, "gt=0", "max cargo capacity must be positive")
}
