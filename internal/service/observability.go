package service

import (
	"context"
	"io"
	"log/slog"
)

// SheetEvent describes one dispatched form event and the state it produced.
type SheetEvent struct {
	Name       string
	Intervals  int
	TotalHours float64
	IsError    bool
	Err        error
}

// SheetObserver receives sheet events.
type SheetObserver interface {
	ObserveSheet(ctx context.Context, event SheetEvent)
}

// NoopSheetObserver ignores all events.
type NoopSheetObserver struct{}

func (NoopSheetObserver) ObserveSheet(context.Context, SheetEvent) {}

type logSheetObserver struct {
	logger *slog.Logger
}

// NewLogSheetObserver writes sheet events to w as slog text records.
// A nil writer yields a no-op observer.
func NewLogSheetObserver(w io.Writer) SheetObserver {
	if w == nil {
		return NoopSheetObserver{}
	}
	return &logSheetObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (o *logSheetObserver) ObserveSheet(ctx context.Context, event SheetEvent) {
	attrs := []any{
		"event", event.Name,
		"intervals", event.Intervals,
		"total_hours", event.TotalHours,
		"error", event.IsError,
	}
	if event.Err != nil {
		attrs = append(attrs, "err", event.Err.Error())
		o.logger.ErrorContext(ctx, "sheet_event", attrs...)
		return
	}
	o.logger.DebugContext(ctx, "sheet_event", attrs...)
}
