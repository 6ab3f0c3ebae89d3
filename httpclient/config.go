package httpclient

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config identifies the service a client talks to. One client (and one
// error handler underneath it) is built per API family.
type Config struct {
	Service string `validate:"required"`
	BaseURL string `validate:"required,url"`
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
