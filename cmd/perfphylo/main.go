package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/perfphylo/internal/app"
	apperrors "github.com/agbru/perfphylo/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		// The flag package already printed parse errors with the usage.
		code := apperrors.ExitCodeFor(err)
		if code == apperrors.ExitErrorConfig {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		}
		os.Exit(code)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
