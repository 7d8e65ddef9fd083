package format

import (
	"errors"
	"fmt"
)

var ErrInvalidConfiguration = errors.New("invalid formatter configuration")

// InvalidConfigurationError reports an option rejected when a Formatter is
// built.
type InvalidConfigurationError struct {
	Option string
	Msg    string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Option, e.Msg)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}
