package book

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind tags which of the four response variants a Response carries.
type Kind int

const (
	KindAck Kind = iota
	KindReject
	KindBest
	KindTrade
)

// Response is the language-neutral tagged union spec.md §9 calls for: one
// struct, one Kind tag, never a class hierarchy and never an exception.
// Only the fields relevant to Kind are meaningful.
type Response struct {
	Kind Kind

	// Ack / Reject
	UserID  uint32
	OrderID uint32

	// Best
	BestSide  Side
	BestPrice uint32
	BestQty   uint32

	// Trade
	BuyerID       uint32
	BuyerOrderID  uint32
	SellerID      uint32
	SellerOrderID uint32
	TradePrice    uint32
	TradeQty      uint32
}

func ack(userID, orderID uint32) Response {
	return Response{Kind: KindAck, UserID: userID, OrderID: orderID}
}

func reject(userID, orderID uint32) Response {
	return Response{Kind: KindReject, UserID: userID, OrderID: orderID}
}

func best(side Side, price, qty uint32) Response {
	return Response{Kind: KindBest, BestSide: side, BestPrice: price, BestQty: qty}
}

func tradeResponse(buyer, seller *Order) Response {
	return Response{
		Kind:          KindTrade,
		BuyerID:       buyer.UserID,
		BuyerOrderID:  buyer.OrderID,
		SellerID:      seller.UserID,
		SellerOrderID: seller.OrderID,
		TradePrice:    buyer.Price,
		TradeQty:      buyer.Qty,
	}
}

// String renders the response per spec.md §6's output table.
func (r Response) String() string {
	switch r.Kind {
	case KindAck:
		return "A, " + fmtU32(r.UserID) + ", " + fmtU32(r.OrderID)
	case KindReject:
		return "R, " + fmtU32(r.UserID) + ", " + fmtU32(r.OrderID)
	case KindBest:
		return "B, " + r.BestSide.String() + ", " + dashZero(r.BestPrice) + ", " + dashZero(r.BestQty)
	case KindTrade:
		return strings.Join([]string{
			"T",
			fmtU32(r.BuyerID),
			fmtU32(r.BuyerOrderID),
			fmtU32(r.SellerID),
			fmtU32(r.SellerOrderID),
			fmtU32(r.TradePrice),
			fmtU32(r.TradeQty),
		}, ", ")
	default:
		return ""
	}
}

func fmtU32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func dashZero(v uint32) string {
	if v == 0 {
		return "-"
	}
	return fmtU32(v)
}

// Trade is an append-only record of a matched pair, kept in the book's
// trade log. ID exists purely for log correlation, the way the teacher's
// NewOrderMessage.Order stamps incoming orders with a uuid.New().String();
// it is never rendered on the wire.
type Trade struct {
	ID     string
	Buyer  Order
	Seller Order
	Price  uint32
	Qty    uint32
}

func newTrade(buyer, seller *Order) Trade {
	return Trade{
		ID:     uuid.New().String(),
		Buyer:  *buyer,
		Seller: *seller,
		Price:  buyer.Price,
		Qty:    buyer.Qty,
	}
}
