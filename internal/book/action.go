package book

// ActionKind tags which UserAction variant is carried.
type ActionKind int

const (
	ActionNewOrder ActionKind = iota
	ActionCancelOrder
	ActionFlush
)

// UserAction is the external action sum type spec.md §4.6 dispatches on.
// Symbol is accepted but ignored (single-book scope, spec §4.2).
type UserAction struct {
	Kind ActionKind

	UserID  uint32
	OrderID uint32
	Symbol  string
	Price   uint32
	Qty     uint32
	Side    Side
}

func NewOrderAction(userID uint32, symbol string, price, qty uint32, side Side, orderID uint32) UserAction {
	return UserAction{
		Kind:    ActionNewOrder,
		UserID:  userID,
		OrderID: orderID,
		Symbol:  symbol,
		Price:   price,
		Qty:     qty,
		Side:    side,
	}
}

func CancelOrderAction(userID, orderID uint32) UserAction {
	return UserAction{Kind: ActionCancelOrder, UserID: userID, OrderID: orderID}
}

func FlushAction() UserAction {
	return UserAction{Kind: ActionFlush}
}

// Apply dispatches a single action against the book and returns the
// (primary, secondary) response pair. Either or both may be absent (nil);
// both are absent only for Flush. This is the only entry point external
// callers need (spec §4.6).
func (b *Book) Apply(a UserAction) (primary, secondary *Response) {
	switch a.Kind {
	case ActionNewOrder:
		return b.NewOrder(a.UserID, a.OrderID, a.Price, a.Qty, a.Side)
	case ActionCancelOrder:
		return b.CancelOrder(a.UserID, a.OrderID)
	case ActionFlush:
		b.Flush()
		return nil, nil
	default:
		return nil, nil
	}
}
