package feed

import (
	"bufio"
	"io"

	"github.com/rs/zerolog/log"

	"bookengine/internal/book"
)

// Read streams every line of r through ParseLine, sending each
// successfully parsed action to out in file order. Malformed lines are
// logged at debug level and dropped, matching original_source/src/main.rs's
// silent-skip behavior but with an audit trail. Read returns once r is
// exhausted or ctx-style cancellation is observed via done.
func Read(r io.Reader, out chan<- book.UserAction, done <-chan struct{}) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		action, ok := ParseLine(line)
		if !ok {
			log.Debug().Str("line", line).Msg("dropping unrecognized input line")
			continue
		}
		select {
		case out <- action:
		case <-done:
			return nil
		}
	}
	return scanner.Err()
}
