package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xolan/punch/internal/cli"
	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/sheet"
)

// CalcOptions holds per-invocation overrides of the configured behavior.
// Zero values keep the configured setting.
type CalcOptions struct {
	Clock  interval.Clock
	Policy interval.ErrorPolicy
	Target float64
	JSON   bool
}

// Apply merges the overrides into opts.
func (o CalcOptions) Apply(opts sheet.Options) sheet.Options {
	if o.Clock != "" {
		opts.Clock = o.Clock
	}
	if o.Policy != "" {
		opts.Policy = o.Policy
	}
	if o.Target > 0 {
		opts.TargetHours = o.Target
	}
	return opts
}

// Calculate parses spans, feeds them through the sheet service and prints
// the resulting totals. Spans come from args, or from stdin when args is
// empty (an interactive prompt on a terminal, one span per line otherwise).
func Calculate(ctx context.Context, deps *cli.Deps, args []string, opts CalcOptions) {
	sheetOpts := opts.Apply(deps.Config.SheetOptions())

	spans, err := collectSpans(deps, args, sheetOpts.Clock)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read intervals")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	if len(spans) == 0 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No intervals given")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: punch <in>-<out> [<in>-<out>...]")
		_, _ = fmt.Fprintf(deps.Stderr, "Example: punch %s\n", exampleSpans(sheetOpts.Clock))
		deps.Exit(1)
		return
	}

	intervals := make([]interval.Interval, 0, len(spans))
	for _, s := range spans {
		iv, err := interval.ParseSpan(s, sheetOpts.Clock)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid interval %q\n", s)
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintf(deps.Stderr, "Example: punch %s\n", exampleSpans(sheetOpts.Clock))
			deps.Exit(1)
			return
		}
		intervals = append(intervals, iv)
	}

	st, err := loadSheet(ctx, deps, sheetOpts, intervals)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to calculate total hours")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if opts.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cli.NewSheetJSON(st)); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write JSON output")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
		}
		return
	}
	cli.WriteSheet(deps.Stdout, st)
}

// loadSheet replays intervals into the sheet service as form events, the
// same way an interactive front end would, and calculates the total.
func loadSheet(ctx context.Context, deps *cli.Deps, opts sheet.Options, intervals []interval.Interval) (sheet.State, error) {
	svc := deps.Services.Sheet
	svc.SetOptions(opts)
	svc.Reset(ctx)

	fields := sheet.Fields(opts.Clock)
	for i, iv := range intervals {
		if i > 0 {
			svc.AddInterval(ctx)
		}
		for _, f := range fields {
			if _, err := svc.SetField(ctx, i, f, f.Get(iv)); err != nil {
				return sheet.State{}, err
			}
		}
	}
	return svc.Calculate(ctx), nil
}

func collectSpans(deps *cli.Deps, args []string, clock interval.Clock) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if deps.IsInteractive != nil && deps.IsInteractive() && deps.Prompt != nil {
		return deps.Prompt(clock)
	}
	return readSpans(deps)
}

// readSpans reads one span per line, skipping blank lines and # comments.
func readSpans(deps *cli.Deps) ([]string, error) {
	if deps.Stdin == nil {
		return nil, nil
	}
	var spans []string
	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		spans = append(spans, line)
	}
	return spans, scanner.Err()
}

func exampleSpans(clock interval.Clock) string {
	if clock == interval.Clock12 {
		return "9:00am-12:00pm 1:00pm-5:30pm"
	}
	return "9:00-12:00 13:00-17:30"
}
