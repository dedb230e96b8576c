// Package session simulates signing in to the tracker.
//
// There are no credentials to check. Login waits a fixed delay and then hands
// back a Session; the wait honors context cancellation so an impatient user
// (or a SIGINT) can abandon it.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/logging"
)

// Session is a signed-in demo user.
type Session struct {
	ID        string      `json:"id"`
	User      domain.User `json:"user"`
	StartedAt time.Time   `json:"started_at"`
}

// Credentials is what the login form collects. The password is accepted
// only so the form looks real; it is never stored or logged.
type Credentials struct {
	Username string
	Password string
}

// Authenticator performs the simulated login.
type Authenticator struct {
	delay  time.Duration
	clock  clock.Clock
	logger zerolog.Logger
	after  func(time.Duration) <-chan time.Time
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithClock sets the clock used to stamp StartedAt.
func WithClock(c clock.Clock) Option {
	return func(a *Authenticator) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Authenticator) {
		a.logger = logger.With().Str("component", "session").Logger()
	}
}

// NewAuthenticator creates an Authenticator that waits delay before
// completing a login. Negative delays are treated as zero and delays above
// constants.MaxLoginDelay are capped.
func NewAuthenticator(delay time.Duration, opts ...Option) *Authenticator {
	delay = max(delay, 0)
	delay = min(delay, constants.MaxLoginDelay)

	a := &Authenticator{
		delay:  delay,
		clock:  clock.RealClock{},
		logger: zerolog.Nop(),
		after:  time.After,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Delay returns the configured login delay.
func (a *Authenticator) Delay() time.Duration {
	return a.delay
}

// Login waits for the login delay and returns a new session for the user.
//
// It returns ErrEmptyValue for a blank username and ErrLoginCanceled, wrapping
// the context error, when ctx ends first.
func (a *Authenticator) Login(ctx context.Context, creds Credentials) (*Session, error) {
	name := strings.TrimSpace(creds.Username)
	if name == "" {
		return nil, deckerrors.Wrap(deckerrors.ErrEmptyValue, "username")
	}

	// Usernames are free text, so they are scrubbed before logging.
	logUser := logging.SafeValue("user", name)
	a.logger.Debug().Str("user", logUser).Dur("delay", a.delay).Msg("login started")

	if a.delay > 0 {
		select {
		case <-ctx.Done():
			a.logger.Debug().Str("user", logUser).Msg("login canceled")
			return nil, canceled(ctx.Err())
		case <-a.after(a.delay):
		}
	} else if err := ctx.Err(); err != nil {
		return nil, canceled(err)
	}

	s := &Session{
		ID:        uuid.NewString(),
		User:      UserFor(name),
		StartedAt: a.clock.Now(),
	}
	a.logger.Info().Str("session_id", s.ID).Str("user", logUser).Msg("login complete")
	return s, nil
}

// canceled joins ErrLoginCanceled with the context error so callers can
// match either.
func canceled(cause error) error {
	return fmt.Errorf("%w: %w", deckerrors.ErrLoginCanceled, cause)
}

// UserFor builds the demo profile for a username.
func UserFor(name string) domain.User {
	handle := strings.ToLower(strings.Join(strings.Fields(name), "."))
	return domain.User{
		Name:   name,
		Email:  handle + "@taskdeck.local",
		Role:   "Member",
		Avatar: initials(name),
	}
}

// initials returns up to two leading letters of the name's words, uppercased.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		out = append(out, unicode.ToUpper([]rune(word)[0]))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
