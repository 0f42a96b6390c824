package book

import "github.com/tidwall/btree"

// priceLevel is an insertion-ordered bucket of resting orders sharing one
// side and one price. Orders are appended on arrival and spliced out on
// cancel/match; their relative order is never otherwise disturbed.
type priceLevel struct {
	price  uint32
	orders []*Order
}

func (l *priceLevel) qty() uint32 {
	var total uint32
	for _, o := range l.orders {
		total += o.Qty
	}
	return total
}

func (l *priceLevel) removeAt(idx int) {
	l.orders = append(l.orders[:idx], l.orders[idx+1:]...)
}

func (l *priceLevel) indexOf(key orderKey) int {
	for i, o := range l.orders {
		if o.key() == key {
			return i
		}
	}
	return -1
}

// levels is a price -> priceLevel sorted map for one side of the book. The
// comparator direction is fixed at construction: greatest-first for bids,
// least-first for asks, matching the teacher's two independently-ordered
// btree.BTreeG instances.
type levels struct {
	tree *btree.BTreeG[*priceLevel]
}

func newBidLevels() levels {
	return levels{tree: btree.NewBTreeG(func(a, b *priceLevel) bool {
		return a.price > b.price
	})}
}

func newAskLevels() levels {
	return levels{tree: btree.NewBTreeG(func(a, b *priceLevel) bool {
		return a.price < b.price
	})}
}

func (ls levels) get(price uint32) (*priceLevel, bool) {
	return ls.tree.Get(&priceLevel{price: price})
}

func (ls levels) set(l *priceLevel) {
	ls.tree.Set(l)
}

func (ls levels) delete(price uint32) {
	ls.tree.Delete(&priceLevel{price: price})
}

func (ls levels) len() int {
	return ls.tree.Len()
}

// best returns the price of the top level on this side, or 0 if empty.
func (ls levels) best() uint32 {
	top, ok := ls.tree.Min()
	if !ok {
		return 0
	}
	return top.price
}

// bestLevel returns the top level on this side, if any.
func (ls levels) bestLevel() (*priceLevel, bool) {
	return ls.tree.Min()
}

// getOrCreate returns the level at price, creating an empty one if absent.
func (ls levels) getOrCreate(price uint32) *priceLevel {
	l, ok := ls.get(price)
	if ok {
		return l
	}
	l = &priceLevel{price: price}
	ls.set(l)
	return l
}
