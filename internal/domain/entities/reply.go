package entities

// ReplyKind tags what a supplier's reply carried.
//
// The store still encodes this in a single numeric field (absent, negative
// sentinel, zero, positive). DecodeReply and EncodeReplyPrice are the only
// places that know about that encoding.

type ReplyKind string

const (
	ReplyNotResponded ReplyKind = "NOT_RESPONDED"
	ReplyAcknowledged ReplyKind = "ACKNOWLEDGED"
	ReplyNoStock      ReplyKind = "NO_STOCK"
	ReplyPriced       ReplyKind = "PRICED"
)

// AcknowledgedPriceSentinel is the stored price for "replied, no price given".
const AcknowledgedPriceSentinel = -1.0

type Reply struct {
	Kind   ReplyKind `json:"kind"`
	Amount float64   `json:"amount,omitempty"`
	Reason string    `json:"reason,omitempty"`
}

func NotResponded() Reply { return Reply{Kind: ReplyNotResponded} }

func Acknowledged() Reply { return Reply{Kind: ReplyAcknowledged} }

func NoStock(reason string) Reply { return Reply{Kind: ReplyNoStock, Reason: reason} }

// Priced builds a priced reply. A non-positive (or NaN) amount is not a price
// and degrades to Acknowledged.
func Priced(amount float64) Reply {
	if !(amount > 0) {
		return Acknowledged()
	}
	return Reply{Kind: ReplyPriced, Amount: amount}
}

// DecodeReply maps the stored (responded, parsed_price) pair onto a Reply.
// Order matters: not responded wins over any stored price.
func DecodeReply(responded bool, parsedPrice *float64, rawMessage string) Reply {
	switch {
	case !responded:
		return NotResponded()
	case parsedPrice != nil && *parsedPrice > 0:
		return Reply{Kind: ReplyPriced, Amount: *parsedPrice}
	case parsedPrice != nil && *parsedPrice == 0:
		return NoStock(rawMessage)
	default:
		return Acknowledged()
	}
}

// EncodeReplyPrice is the inverse of DecodeReply for the price field.
func EncodeReplyPrice(r Reply) (responded bool, parsedPrice *float64) {
	var v float64
	switch r.Kind {
	case ReplyPriced:
		v = r.Amount
	case ReplyNoStock:
		v = 0
	case ReplyAcknowledged:
		v = AcknowledgedPriceSentinel
	default:
		return false, nil
	}
	return true, &v
}
