// Package web serves the interval form over HTTP. The server keeps no
// state: every POST carries the whole form, which is rebuilt into a sheet,
// has the requested action applied and is rendered back.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/punch/internal/cli"
	"github.com/xolan/punch/internal/interval"
	"github.com/xolan/punch/internal/service"
	"github.com/xolan/punch/internal/sheet"
)

// MaxIntervals caps the rows accepted from one form post.
const MaxIntervals = 48

//go:embed templates/page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// Server renders the form and applies posted actions.
type Server struct {
	opts     sheet.Options
	observer service.SheetObserver
}

// NewServer creates a Server computing with opts. Applied actions are
// reported to observer; nil disables reporting.
func NewServer(opts sheet.Options, observer service.SheetObserver) *Server {
	return &Server{opts: opts, observer: observer}
}

// Handler returns the HTTP routes of the form.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, sheet.New(s.opts), "")
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	intervals, err := parseIntervals(r, s.opts.Clock)
	if err != nil {
		s.render(w, http.StatusBadRequest, sheet.New(s.opts), err.Error())
		return
	}

	last, err := parseLastResult(r)
	if err != nil {
		s.render(w, http.StatusBadRequest, sheet.New(s.opts), err.Error())
		return
	}

	svc := service.NewSheetService(s.opts, s.observer)
	st := svc.Restore(intervals, last)

	action := strings.TrimSpace(r.FormValue("action"))
	if action == "" {
		s.render(w, http.StatusOK, st, "")
		return
	}

	event, err := sheet.ParseAction(action)
	if err != nil {
		s.render(w, http.StatusBadRequest, st, err.Error())
		return
	}
	st, err = svc.Dispatch(r.Context(), event)
	if err != nil {
		s.render(w, http.StatusUnprocessableEntity, st, err.Error())
		return
	}
	s.render(w, http.StatusOK, st, "")
}

// parseIntervals reads the rows posted by the form. Field inputs are named
// "<field>-<row>", e.g. "inHour-0"; "count" holds the number of rows.
func parseIntervals(r *http.Request, clock interval.Clock) ([]interval.Interval, error) {
	count, err := strconv.Atoi(strings.TrimSpace(r.FormValue("count")))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("invalid interval count %q", r.FormValue("count"))
	}
	if count > MaxIntervals {
		return nil, fmt.Errorf("too many intervals: %d (max %d)", count, MaxIntervals)
	}

	// Rows go through the reducer so field values get the same validation
	// as every other front end.
	st := sheet.New(sheet.Options{Clock: clock})
	for i := range count {
		if i > 0 {
			st = st.AddInterval()
		}
		for _, f := range sheet.Fields(clock) {
			value := strings.TrimSpace(r.FormValue(fieldName(f, i)))
			if f.IsMeridiem() && value == "" {
				continue
			}
			if st, err = st.SetField(i, f, value); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
	}
	if count == 0 {
		return nil, nil
	}
	return st.Intervals(), nil
}

// parseLastResult reads the result of the previous calculate, which the
// page posts back in "lastTotal" and "lastIncomplete" (zero-based rows,
// comma separated). It returns nil when the sheet was never calculated.
func parseLastResult(r *http.Request) (*interval.Result, error) {
	raw := strings.TrimSpace(r.FormValue("lastTotal"))
	if raw == "" {
		return nil, nil
	}
	total, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid last total %q", raw)
	}

	res := &interval.Result{TotalHours: total}
	if inc := strings.TrimSpace(r.FormValue("lastIncomplete")); inc != "" {
		for _, part := range strings.Split(inc, ",") {
			row, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || row < 0 {
				return nil, fmt.Errorf("invalid incomplete row %q", part)
			}
			res.Incomplete = append(res.Incomplete, row)
		}
		res.IsError = true
	}
	return res, nil
}

func fieldName(f sheet.Field, row int) string {
	return fmt.Sprintf("%s-%d", f, row)
}

type pageData struct {
	Clock      interval.Clock
	Twelve     bool
	Count      int
	Rows       []rowData
	Total      string
	Message    string
	Achieved   bool
	Warning    string
	Calculated bool
	Error      string

	// Posted back so the next request keeps the last result.
	LastTotal      string
	LastIncomplete string
}

type rowData struct {
	Index      int
	Number     int
	InHour     string
	InMinute   string
	InPM       bool
	OutHour    string
	OutMinute  string
	OutPM      bool
	Hours      string
	Incomplete bool
}

func newPageData(st sheet.State, errMsg string) pageData {
	opts := st.Options()
	sum := st.Summary()
	data := pageData{
		Clock:      opts.Clock,
		Twelve:     opts.Clock == interval.Clock12,
		Count:      st.Len(),
		Calculated: st.Calculated(),
		Total:      sum.TotalDisplay(),
		Message:    sum.TargetMessage(),
		Achieved:   sum.Achieved,
		Warning:    sum.Warning(),
		Error:      errMsg,
	}
	if st.Calculated() {
		res := st.Result()
		data.LastTotal = strconv.FormatFloat(res.TotalHours, 'g', -1, 64)
		rows := make([]string, len(res.Incomplete))
		for i, idx := range res.Incomplete {
			rows[i] = strconv.Itoa(idx)
		}
		data.LastIncomplete = strings.Join(rows, ",")
	}

	for i, iv := range st.Intervals() {
		row := rowData{
			Index:     i,
			Number:    i + 1,
			InHour:    iv.InHour,
			InMinute:  iv.InMinute,
			InPM:      iv.InMeridiem == interval.PM,
			OutHour:   iv.OutHour,
			OutMinute: iv.OutMinute,
			OutPM:     iv.OutMeridiem == interval.PM,
		}
		if d, ok := iv.Delta(opts.Clock); ok {
			row.Hours = cli.FormatDelta(d)
		} else {
			row.Incomplete = true
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

func (s *Server) render(w http.ResponseWriter, status int, st sheet.State, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = pageTemplate.Execute(w, newPageData(st, errMsg))
}

// ListenAndServe serves s on addr until ctx is canceled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, s *Server) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
