package domain

import "github.com/google/uuid"

type UserID = uuid.UUID
type PortfolioID = uuid.UUID

// Status marks whether a record is live or soft-deleted.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)
