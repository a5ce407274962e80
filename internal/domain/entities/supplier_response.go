package entities

import "time"

// SupplierTarget is the addressable party a request was sent to.
type SupplierTarget struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SupplierResponse is the single response slot of a supplier inside a session.
//
// Storage model (DynamoDB):
//   - PK: session_id
//   - SK: supplier_id
//
// Slots are created empty when the session starts and overwritten by later
// replies (last writer wins), since suppliers may correct themselves.
type SupplierResponse struct {
	SessionID  string         `json:"session_id"`
	Supplier   SupplierTarget `json:"supplier"`
	RawMessage string         `json:"raw_message,omitempty"`
	Reply      Reply          `json:"reply"`
	ReceivedAt *time.Time     `json:"received_at,omitempty"`
}

func (r SupplierResponse) Responded() bool {
	return r.Reply.Kind != ReplyNotResponded && r.Reply.Kind != ""
}

// PriceOffer is a single (description, price) pair parsed out of a free-text
// reply. It is never persisted on its own.
type PriceOffer struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (o PriceOffer) Equal(other PriceOffer) bool {
	return o.Description == other.Description && o.Price == other.Price
}
