package group

import "time"

// Group records the name and admin chosen at creation; both are immutable.
// The admin is recorded only, not auto-joined as a member.
type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	AdminID   int64     `json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is one current group member, in membership insertion order.
type Member struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
