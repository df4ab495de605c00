package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/linearcli/internal/linearcli"
	"github.com/dimasma0305/linearcli/internal/linearcli/config"
	lerrors "github.com/dimasma0305/linearcli/internal/linearcli/errors"
	"github.com/dimasma0305/linearcli/internal/log"
)

// newApp builds the application from the loaded configuration. Tests replace it.
var newApp = func() (*linearcli.App, error) {
	conf, err := config.Load()
	if err != nil {
		return nil, err
	}
	log.Debug("Using credential namespace %q and endpoint %s", conf.ServiceName, conf.APIURL)
	return linearcli.New(conf), nil
}

// reportedError marks a failure that was already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// report prints a command failure. Guidance goes to stdout as plain
// information, everything else is an error line.
func report(err error) {
	if err == nil {
		return
	}
	switch lerrors.KindOf(err) {
	case lerrors.KindMissingCredential, lerrors.KindValidation:
		log.Info("%s", err.Error())
		return
	}
	if msg := err.Error(); msg != "" {
		log.Error("Error: %s", msg)
		return
	}
	log.Error("An unknown error occurred")
}

// runApp builds the App, runs fn and reports its outcome. The returned error
// is only non-nil in strict mode, so failures never change the exit status
// unless asked to.
func runApp(cmd *cobra.Command, fn func(ctx context.Context, app *linearcli.App) error) error {
	app, err := newApp()
	if err == nil {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		err = fn(ctx, app)
	}
	if err == nil {
		return nil
	}
	report(err)
	if strictMode {
		return &reportedError{err: err}
	}
	return nil
}
