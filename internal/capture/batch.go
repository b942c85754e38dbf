package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/danmuck/radiotap/internal/observability"
	"github.com/danmuck/radiotap/internal/radiotap"
	"github.com/gopacket/gopacket"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// records decoded per worker before results are flushed in order
const windowPerWorker = 64

// Options tunes DecodeAll.
type Options struct {
	// Workers bounds concurrent decodes; zero or less means GOMAXPROCS.
	Workers int
	// StopOnError ends the batch at the first undecodable header.
	StopOnError bool
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Result is the outcome for one record. Exactly one of Header and Err is
// set.
type Result struct {
	Index  int
	Info   gopacket.CaptureInfo
	Header *radiotap.Header
	Err    error
}

// Stats summarises one DecodeAll call.
type Stats struct {
	Packets int
	Decoded int
	Failed  int
	// Fields counts present fields over decoded headers.
	Fields  map[radiotap.FieldID]int
	Elapsed time.Duration
}

// PacketError is returned when StopOnError ends a batch.
type PacketError struct {
	Index int
	Err   error
}

func (e *PacketError) Error() string {
	return fmt.Sprintf("capture: packet %d: %v", e.Index, e.Err)
}

func (e *PacketError) Unwrap() error {
	return e.Err
}

// Outcome labels a decode error for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, radiotap.ErrMalformedHeader):
		return "malformed_header"
	case errors.Is(err, radiotap.ErrTruncatedField):
		return "truncated_field"
	default:
		return "error"
	}
}

// DecodeAll decodes the RadioTap header of every record in src. Headers are
// decoded concurrently and handed to emit in capture order; emit may be nil.
// A failing header is reported in its Result and does not affect the others
// unless opts.StopOnError is set.
func DecodeAll(ctx context.Context, src *Source, opts Options, emit func(Result) error) (stats Stats, err error) {
	start := time.Now()
	stats = Stats{Fields: make(map[radiotap.FieldID]int)}
	defer func() {
		stats.Elapsed = time.Since(start)
		observability.RecordBatch(stats.Elapsed)
	}()

	workers := opts.workers()
	window := make([]Record, 0, workers*windowPerWorker)
	results := make([]Result, cap(window))

	for done := false; !done; {
		window = window[:0]
		for len(window) < cap(window) {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			rec, err := src.Next()
			if errors.Is(err, io.EOF) {
				done = true
				break
			}
			if err != nil {
				return stats, fmt.Errorf("capture: read packet %d: %w", src.next, err)
			}
			window = append(window, rec)
		}

		if err := decodeWindow(ctx, window, results, workers); err != nil {
			return stats, err
		}

		for _, res := range results[:len(window)] {
			stats.Packets++
			if res.Err != nil {
				stats.Failed++
				observability.RecordDecode(Outcome(res.Err), nil)
				log.Debug().Int("packet", res.Index).Str("outcome", Outcome(res.Err)).Err(res.Err).Msg("radiotap decode failed")
			} else {
				stats.Decoded++
				ids := res.Header.Present.IDs()
				names := make([]string, len(ids))
				for i, id := range ids {
					stats.Fields[id]++
					names[i] = id.String()
				}
				observability.RecordDecode(Outcome(nil), names)
			}
			if emit != nil {
				if err := emit(res); err != nil {
					return stats, err
				}
			}
			if res.Err != nil && opts.StopOnError {
				return stats, &PacketError{Index: res.Index, Err: res.Err}
			}
		}
	}
	return stats, nil
}

func decodeWindow(ctx context.Context, window []Record, results []Result, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rec := range window {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			h, err := radiotap.Decode(rec.Data)
			results[i] = Result{Index: rec.Index, Info: rec.Info, Header: h, Err: err}
			return nil
		})
	}
	return g.Wait()
}
