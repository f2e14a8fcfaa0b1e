package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base is embedded by the bigserial keyed domain tables.
type Base struct {
	ID int64 `db:"id"`
}

// BaseSimple is embedded by the identity tables, keyed by uuid.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
