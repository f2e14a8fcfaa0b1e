package request

// TicketRequest books one seat. Row and seat bounds depend on the airplane
// and are checked by the booking service, not by tags.
type TicketRequest struct {
	Flight int64 `json:"flight" validate:"required,gt=0"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
}

type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"dive"`
}
