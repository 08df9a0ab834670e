package history

import "time"

// Entry is one row of a reconstructed message history: the ledger id, who
// sent it, and when. Group histories contain one entry per recipient of each
// group send, mirroring how the ledger materializes fan-out.
type Entry struct {
	MessageID int64     `json:"message_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
