// Package feed turns the line-oriented input format (spec.md §6) into a
// stream of book.UserAction values. Malformed lines are dropped silently,
// per spec.md §7: there is no dead-letter path for structural faults at
// the line level, only at the file level.
package feed

import (
	"regexp"
	"strconv"

	"bookengine/internal/book"
)

// The two patterns mirror original_source/src/main.rs's Regex definitions
// almost exactly, translated from the regex crate's syntax to Go's RE2
// dialect (a direct translation here: both support the named classes and
// anchors this grammar needs).
var (
	newOrderRe    = regexp.MustCompile(`^N, ([0-9]+), ([[:alpha:]]+), ([0-9]+), ([0-9]+), ([BS]), ([0-9]+)`)
	cancelOrderRe = regexp.MustCompile(`^C, ([0-9]+), ([0-9]+)`)
	flushRe       = regexp.MustCompile(`^F`)
)

// ParseLine parses one line of input. ok is false when the line matches
// none of the three shapes in spec.md §6, in which case the line must be
// silently dropped by the caller.
func ParseLine(line string) (action book.UserAction, ok bool) {
	if m := newOrderRe.FindStringSubmatch(line); m != nil {
		userID, err1 := parseU32(m[1])
		symbol := m[2]
		price, err2 := parseU32(m[3])
		qty, err3 := parseU32(m[4])
		side := book.ParseSide(m[5])
		orderID, err4 := parseU32(m[6])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return book.UserAction{}, false
		}
		return book.NewOrderAction(userID, symbol, price, qty, side, orderID), true
	}

	if m := cancelOrderRe.FindStringSubmatch(line); m != nil {
		userID, err1 := parseU32(m[1])
		orderID, err2 := parseU32(m[2])
		if err1 != nil || err2 != nil {
			return book.UserAction{}, false
		}
		return book.CancelOrderAction(userID, orderID), true
	}

	if flushRe.MatchString(line) {
		return book.FlushAction(), true
	}

	return book.UserAction{}, false
}

func parseU32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
