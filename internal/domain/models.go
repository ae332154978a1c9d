package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleMember        string = "member"
	RoleAdministrator string = "administrator"
)

const (
	// PendingResponse means the bid awaits an administrator decision.
	PendingResponse string = "Pending"
	// ApprovedResponse is terminal: the bid was accepted.
	ApprovedResponse string = "Approved"
	// RejectedResponse is terminal: the bid was declined.
	RejectedResponse string = "Rejected"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// ProjectSnapshot is the authoritative state of a project as served by the
// catalog read model at lookup time.
type ProjectSnapshot struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Thumbnail string `json:"thumbnail"`
}

type CartItem struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	ProjectID string    `db:"project_id"`
	Title     string    `db:"title"`
	Price     int64     `db:"price"`
	Thumbnail string    `db:"thumbnail"`
	AddedAt   time.Time `db:"added_at"`
}

// LineItem is a frozen copy of a cart position inside a bid. Line items never
// change after submission, even if the catalog project is edited or deleted.
type LineItem struct {
	ProjectID string `db:"project_id" json:"project_id"`
	Title     string `db:"title" json:"title"`
	Price     int64  `db:"price" json:"price"`
	Thumbnail string `db:"thumbnail" json:"thumbnail"`
}

type Bid struct {
	ID             uuid.UUID  `db:"id"`
	UserID         int        `db:"user_id"`
	Proposal       string     `db:"proposal"`
	AttachmentRef  string     `db:"attachment_ref"`
	IdempotencyKey string     `db:"idempotency_key"`
	Response       string     `db:"response"`
	LineItems      []LineItem `db:"-"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type EarningsRecord struct {
	ID        uuid.UUID  `db:"id"`
	UserID    int        `db:"user_id"`
	Amount    int64      `db:"amount"`
	BidID     *uuid.UUID `db:"bid_id"`
	CreatedAt time.Time  `db:"created_at"`
}
