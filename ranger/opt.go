package ranger

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"github.com/xy-planning-network/frontdesk"
	"github.com/xy-planning-network/frontdesk/app"
	"github.com/xy-planning-network/frontdesk/logger"
)

// A RangerOption configures a *Ranger under construction.
// Fields a RangerOption leaves unset are filled with defaults by [New].
type RangerOption func(rng *Ranger) error

// WithAppOptions passes the [app.OptFn] along to the [*app.Application] the *Ranger builds.
func WithAppOptions(opts ...app.OptFn) RangerOption {
	return func(rng *Ranger) error {
		rng.appOpts = append(rng.appOpts, opts...)
		return nil
	}
}

// WithContext exposes the provided context.Context to the frontdesk app.
// Canceling ctx stops [*Ranger.Guide].
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		if ctx == nil {
			return fmt.Errorf("%w: nil context", frontdesk.ErrBadConfig)
		}

		rng.ctx = ctx
		return nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	return func(rng *Ranger) error {
		e := frontdesk.Environment(envVar)
		if e.Valid() != nil {
			e = frontdesk.EnvVarOrEnv(environmentEnvVar, frontdesk.Development)
		}

		rng.env = e
		return nil
	}
}

// WithFS sets the [fs.FS] searched for templates before the built-in views.
func WithFS(fsys fs.FS) RangerOption {
	return func(rng *Ranger) error {
		rng.fs = fsys
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the frontdesk app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		rng.l = l
		return nil
	}
}

// WithMetadata sets the title and description the views render.
func WithMetadata(m app.Metadata) RangerOption {
	return func(rng *Ranger) error {
		rng.metadata = &m
		return nil
	}
}

// WithOutput sets where the default loggers write to.
func WithOutput(w io.Writer) RangerOption {
	return func(rng *Ranger) error {
		rng.output = w
		return nil
	}
}

// WithServer exposes the *http.Server to the frontdesk app.
// The *Ranger sets the server's Handler.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) error {
		if s == nil {
			return fmt.Errorf("%w: nil server", frontdesk.ErrBadConfig)
		}

		rng.srv = s
		return nil
	}
}
