package domain

import "time"

const (
	InterestPending  = "pending"
	InterestAccepted = "accepted"
	InterestRejected = "rejected"
)

// Interest is a directed edge sender -> receiver. At most one interest may
// exist per ordered pair; the reverse direction is a separate edge.
type Interest struct {
	ID          int        `json:"id" db:"id"`
	SenderID    int        `json:"sender_id" db:"sender_id"`
	ReceiverID  int        `json:"receiver_id" db:"receiver_id"`
	Status      string     `json:"status" db:"status"`
	Message     *string    `json:"message" db:"message"`
	SentAt      time.Time  `json:"sent_at" db:"sent_at"`
	RespondedAt *time.Time `json:"responded_at" db:"responded_at"`
}

// ValidInterestDecision reports whether s is a terminal status a receiver may
// set on a pending interest.
func ValidInterestDecision(s string) bool {
	return s == InterestAccepted || s == InterestRejected
}
