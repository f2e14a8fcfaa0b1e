package response

import (
	"time"

	"airport-booking/internal/data/entity"
)

type TicketResponse struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
}

type TicketListResponse struct {
	ID     int64                `json:"id"`
	Row    int                  `json:"row"`
	Seat   int                  `json:"seat"`
	Flight FlightTicketResponse `json:"flight"`
}

type TicketDetailResponse struct {
	ID     int64                 `json:"id"`
	Row    int                   `json:"row"`
	Seat   int                   `json:"seat"`
	Flight FlightDetailResponse `json:"flight"`
}

type OrderListResponse struct {
	ID        int64                `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Tickets   []TicketListResponse `json:"tickets"`
}

type OrderDetailResponse struct {
	ID        int64                  `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Tickets   []TicketDetailResponse `json:"tickets"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:     ticket.ID,
		Row:    ticket.Row,
		Seat:   ticket.Seat,
		Flight: ticket.FlightID,
	}
}

func OrderToListResponse(order *entity.Order) OrderListResponse {
	tickets := make([]TicketListResponse, len(order.Tickets))
	for i, ticket := range order.Tickets {
		tickets[i] = TicketListResponse{
			ID:     ticket.ID,
			Row:    ticket.Row,
			Seat:   ticket.Seat,
			Flight: FlightToTicketView(&ticket.Flight),
		}
	}

	return OrderListResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}

func OrderToDetailResponse(order *entity.Order) OrderDetailResponse {
	tickets := make([]TicketDetailResponse, len(order.Tickets))
	for i, ticket := range order.Tickets {
		tickets[i] = TicketDetailResponse{
			ID:     ticket.ID,
			Row:    ticket.Row,
			Seat:   ticket.Seat,
			Flight: FlightToDetail(&ticket.Flight, ticket.Flight.TakenSeats),
		}
	}

	return OrderDetailResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}
