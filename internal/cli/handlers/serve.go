package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/xolan/punch/internal/cli"
	"github.com/xolan/punch/internal/service"
	"github.com/xolan/punch/internal/web"
)

// Serve runs the web form on addr until ctx is canceled. Sheet events are
// logged to logOut when it is non-nil.
func Serve(ctx context.Context, deps *cli.Deps, addr string, opts CalcOptions, logOut io.Writer) {
	sheetOpts := opts.Apply(deps.Config.SheetOptions())
	srv := web.NewServer(sheetOpts, service.NewLogSheetObserver(logOut))

	_, _ = fmt.Fprintf(deps.Stdout, "Serving punch (%s clock) on http://%s\n", sheetOpts.Clock, addr)
	_, _ = fmt.Fprintln(deps.Stdout, "Press Ctrl+C to stop.")

	if err := web.ListenAndServe(ctx, addr, srv); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Web server stopped")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}
