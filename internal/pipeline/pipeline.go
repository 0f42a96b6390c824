// Package pipeline wires the feed, book, and sink stages together as
// three tomb-supervised goroutines connected by ordered channels.
//
// This is the concrete replacement spec.md §5 calls for: the Rust
// original shares one Arc<Mutex<Vec<UserAction>>> between a producer,
// consumer, and sink task, busy-looping on "while let Ok(v) = ... { if
// v.len() > 0 { ... } }" to drain it — a racy, CPU-burning design. Here
// the stages are joined by two buffered channels (feed → process →
// sink, depth channelDepth); Go channels are FIFO for
// a single producer and a single consumer, which is exactly the ordering
// guarantee spec.md §5 requires. The book itself (internal/book.Book) is
// only ever touched from the process stage goroutine.
package pipeline

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"bookengine/internal/book"
	"bookengine/internal/feed"
	"bookengine/internal/sink"
)

const channelDepth = 64

// response is one action's (primary, secondary) result, carried from the
// process stage to the sink stage as a single unit so sink ordering
// matches action ordering one-to-one (spec.md §6).
type response struct {
	primary   *book.Response
	secondary *book.Response
}

// Run feeds every line of in through the book and renders every response
// to out, in file order, then returns once the input is exhausted and all
// output has been flushed.
func Run(ctx context.Context, b *book.Book, in io.Reader, out io.Writer) error {
	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()

	actions := make(chan book.UserAction, channelDepth)
	responses := make(chan response, channelDepth)

	t, ctx := tomb.WithContext(ctx)

	t.Go(func() error {
		defer close(actions)
		logger.Info().Msg("feed stage starting")
		err := feed.Read(in, actions, t.Dying())
		if err != nil {
			logger.Error().Err(err).Msg("feed stage failed")
		}
		return err
	})

	t.Go(func() error {
		defer close(responses)
		logger.Info().Msg("process stage starting")
		processed := 0
		for {
			select {
			case <-t.Dying():
				return nil
			case action, ok := <-actions:
				if !ok {
					logger.Info().Int("actions", processed).Msg("process stage drained input")
					return nil
				}
				primary, secondary := b.Apply(action)
				processed++
				select {
				case responses <- response{primary: primary, secondary: secondary}:
				case <-t.Dying():
					return nil
				}
			}
		}
	})

	t.Go(func() error {
		logger.Info().Msg("sink stage starting")
		w := sink.New(out)
		for {
			select {
			case <-t.Dying():
				return w.Flush()
			case r, ok := <-responses:
				if !ok {
					return w.Flush()
				}
				if err := w.Write(r.primary, r.secondary); err != nil {
					logger.Error().Err(err).Msg("sink stage failed")
					return err
				}
			}
		}
	})

	err := t.Wait()
	logger.Info().
		Str("ticker", b.Ticker()).
		Int("trades", len(b.Trades())).
		Msg("pipeline finished")
	return err
}
