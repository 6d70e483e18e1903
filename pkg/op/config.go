package op

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultLogoutURL         = AppRootMarker + "logout"
	DefaultLogoutIDParameter = "logoutId"
	DefaultMessageLifetime   = 10 * time.Minute
)

// UserInteraction configures where the end_session endpoint
// sends the user agent and how the logout message key is passed.
type UserInteraction struct {
	// LogoutURL of the logout page, absolute or relative
	// to the application root (see [AppRootMarker]).
	LogoutURL string `yaml:"logout_url"`

	// LogoutIDParameter is the query parameter carrying the message key.
	LogoutIDParameter string `yaml:"logout_id_parameter"`

	// MessageLifetime bounds how long logout messages stay readable.
	MessageLifetime time.Duration `yaml:"message_lifetime"`
}

func DefaultUserInteraction() UserInteraction {
	return UserInteraction{
		LogoutURL:         DefaultLogoutURL,
		LogoutIDParameter: DefaultLogoutIDParameter,
		MessageLifetime:   DefaultMessageLifetime,
	}
}

// WithDefaults returns a copy with empty fields set to their defaults.
func (c UserInteraction) WithDefaults() UserInteraction {
	if c.LogoutURL == "" {
		c.LogoutURL = DefaultLogoutURL
	}
	if c.LogoutIDParameter == "" {
		c.LogoutIDParameter = DefaultLogoutIDParameter
	}
	if c.MessageLifetime == 0 {
		c.MessageLifetime = DefaultMessageLifetime
	}
	return c
}

var (
	ErrMissingLogoutIDParameter = errors.New("logout id parameter must not be empty")
	ErrInvalidMessageLifetime   = errors.New("message lifetime must be positive")
)

// Validate checks that LogoutURL can be resolved for any request origin.
func (c UserInteraction) Validate() error {
	if _, err := ResolveLogoutURL("https://localhost", "/", c.LogoutURL); err != nil {
		return err
	}
	if c.LogoutIDParameter == "" {
		return ErrMissingLogoutIDParameter
	}
	if c.MessageLifetime <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidMessageLifetime, c.MessageLifetime)
	}
	return nil
}
