package entity

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Base
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	Tickets   []*TicketDetails
}
