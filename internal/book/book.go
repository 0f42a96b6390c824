// Package book implements the single-symbol limit order book state
// machine: price-level storage, the new-order acceptance policy,
// cancellation, and top-of-book bookkeeping. It is the only package in
// this repository with real engineering in it; everything else is glue
// around it (parsing input, rendering output, wiring goroutines).
package book

// Book holds one symbol's resting bids and asks, the cached best price on
// each side, and the trade log. It is exclusively owned by one goroutine;
// see internal/pipeline for how callers keep it that way under
// concurrency.
type Book struct {
	ticker      string
	tradeActive bool

	bids levels
	asks levels

	maxBid uint32
	minAsk uint32

	trades  []Trade
	nextSeq uint64
}

// New constructs an empty book for ticker. tradeActive toggles whether
// crossing orders may match (true) or are always rejected (false).
func New(ticker string, tradeActive bool) *Book {
	return &Book{
		ticker:      ticker,
		tradeActive: tradeActive,
		bids:        newBidLevels(),
		asks:        newAskLevels(),
	}
}

// Ticker returns the symbol this book was built for. A Flush clears it to
// the empty string — a deliberate, tested contract (spec.md §4.5, §9).
func (b *Book) Ticker() string {
	return b.ticker
}

// BidsPriceLevels returns the number of distinct bid price buckets, not
// the number of resting orders.
func (b *Book) BidsPriceLevels() int {
	return b.bids.len()
}

// AsksPriceLevels returns the number of distinct ask price buckets, not
// the number of resting orders.
func (b *Book) AsksPriceLevels() int {
	return b.asks.len()
}

// MaxBid is the cached best bid price, or 0 if the bid side is empty.
func (b *Book) MaxBid() uint32 {
	return b.maxBid
}

// MinAsk is the cached best ask price, or 0 if the ask side is empty.
func (b *Book) MinAsk() uint32 {
	return b.minAsk
}

// Trades returns the append-only trade log accumulated so far.
func (b *Book) Trades() []Trade {
	return b.trades
}

func (b *Book) sideTables(side Side) (own, opp levels) {
	if side == Buy {
		return b.bids, b.asks
	}
	return b.asks, b.bids
}

// crosses reports whether an incoming order at price P on side would lift
// the opposite side's best price (spec.md §4.2). oppBest == 0 means the
// opposite side is empty, and no cross is possible.
func crosses(side Side, price, oppBest uint32) bool {
	if oppBest == 0 {
		return false
	}
	if side == Buy {
		return price >= oppBest
	}
	return price <= oppBest
}

// improvesOrTies reports whether price is at-or-better than ownBest for
// side, or the own side is currently empty.
func improvesOrTies(side Side, price, ownBest uint32) bool {
	if ownBest == 0 {
		return true
	}
	if side == Buy {
		return price >= ownBest
	}
	return price <= ownBest
}

// NewOrder classifies and applies an incoming limit order per the
// acceptance policy in spec.md §4.2: trade, reject, rest-as-best, or
// rest-behind-best.
func (b *Book) NewOrder(userID, orderID, price, qty uint32, side Side) (primary, secondary *Response) {
	b.nextSeq++
	incoming := &Order{
		UserID:  userID,
		OrderID: orderID,
		Price:   price,
		Qty:     qty,
		Side:    side,
		seq:     b.nextSeq,
	}

	own, opp := b.sideTables(side)
	ownBest, oppBest := b.ownOppBest(side)

	if opp.len() > 0 && crosses(side, price, oppBest) {
		if !b.tradeActive {
			r := reject(userID, orderID)
			return &r, nil
		}
		return b.tryMatch(incoming, opp, side)
	}

	if improvesOrTies(side, price, ownBest) {
		level := own.getOrCreate(price)
		level.orders = append(level.orders, incoming)
		b.setOwnBest(side, price)

		a := ack(userID, orderID)
		s := best(side, level.price, level.qty())
		return &a, &s
	}

	level := own.getOrCreate(price)
	level.orders = append(level.orders, incoming)
	a := ack(userID, orderID)
	return &a, nil
}

// tryMatch handles the crossing-with-trading-enabled branch: an
// exact-price, exact-quantity match against the opposite side, or a
// reject if none exists (spec.md §4.2 step 1, §9 open question).
func (b *Book) tryMatch(incoming *Order, opp levels, side Side) (primary, secondary *Response) {
	level, ok := opp.get(incoming.Price)
	if !ok {
		r := reject(incoming.UserID, incoming.OrderID)
		return &r, nil
	}

	idx := -1
	for i, resting := range level.orders {
		if resting.Qty == incoming.Qty {
			idx = i
			break
		}
	}
	if idx == -1 {
		r := reject(incoming.UserID, incoming.OrderID)
		return &r, nil
	}

	resting := level.orders[idx]
	level.removeAt(idx)
	if len(level.orders) == 0 {
		opp.delete(level.price)
		b.recomputeBest(otherSide(side))
	}

	var buyer, seller *Order
	if side == Buy {
		buyer, seller = incoming, resting
	} else {
		buyer, seller = resting, incoming
	}

	b.trades = append(b.trades, newTrade(buyer, seller))

	a := ack(incoming.UserID, incoming.OrderID)
	t := tradeResponse(buyer, seller)
	return &a, &t
}

// CancelOrder searches asks then bids for (userID, orderID), per spec.md
// §4.3. Ownership is not enforced: any caller may cancel any order
// matching the identifier pair.
func (b *Book) CancelOrder(userID, orderID uint32) (primary, secondary *Response) {
	key := orderKey{userID: userID, orderID: orderID}

	if a, s, found := b.cancelFromSide(Sell, b.asks, key); found {
		return a, s
	}
	if a, s, found := b.cancelFromSide(Buy, b.bids, key); found {
		return a, s
	}

	rej := reject(userID, orderID)
	return &rej, nil
}

// cancelFromSide looks for key within one side's levels. found reports
// whether the identifier pair was located on this side at all; primary
// and secondary are only meaningful when found is true.
func (b *Book) cancelFromSide(side Side, ls levels, key orderKey) (primary, secondary *Response, found bool) {
	var level *priceLevel
	var idx int
	ls.tree.Scan(func(l *priceLevel) bool {
		if i := l.indexOf(key); i != -1 {
			level, idx = l, i
			return false
		}
		return true
	})
	if level == nil {
		return nil, nil, false
	}

	a := ack(key.userID, key.orderID)

	if len(level.orders) > 1 {
		level.removeAt(idx)
		if level.price == b.bestFor(side) {
			s := best(side, level.price, level.qty())
			return &a, &s, true
		}
		return &a, nil, true
	}

	// Last order at this level: the bucket disappears entirely.
	wasBest := level.price == b.bestFor(side)
	ls.delete(level.price)
	if !wasBest {
		return &a, nil, true
	}

	b.recomputeBest(side)
	if newLevel, ok := ls.bestLevel(); ok {
		s := best(side, newLevel.price, newLevel.qty())
		return &a, &s, true
	}
	s := best(side, 0, 0)
	return &a, &s, true
}

func (b *Book) ownOppBest(side Side) (own, opp uint32) {
	if side == Buy {
		return b.maxBid, b.minAsk
	}
	return b.minAsk, b.maxBid
}

func (b *Book) bestFor(side Side) uint32 {
	if side == Buy {
		return b.maxBid
	}
	return b.minAsk
}

func (b *Book) setOwnBest(side Side, price uint32) {
	if side == Buy {
		b.maxBid = price
	} else {
		b.minAsk = price
	}
}

// recomputeBest recalculates the cached best price for side from the
// post-mutation table, per spec.md §9's guidance on keeping a redundant
// cache correct.
func (b *Book) recomputeBest(side Side) {
	if side == Buy {
		b.maxBid = b.bids.best()
	} else {
		b.minAsk = b.asks.best()
	}
}

func otherSide(side Side) Side {
	if side == Buy {
		return Sell
	}
	return Buy
}

// Flush empties both sides of the book, resets cached bests to 0, and
// clears the ticker to the empty string (spec.md §4.5 — surprising but
// normative). It never fails and emits no response.
func (b *Book) Flush() {
	b.bids = newBidLevels()
	b.asks = newAskLevels()
	b.maxBid = 0
	b.minAsk = 0
	b.ticker = ""
}
