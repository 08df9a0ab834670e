package message

import "time"

// Message is one ledger entry addressed to a single receiver. GroupID is nil
// for direct messages and records the origin group for fan-out copies.
// Entries are append-only: never edited, never deleted.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	GroupID    *int64    `json:"group_id,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
