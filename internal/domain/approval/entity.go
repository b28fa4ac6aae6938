package approval

import "time"

// PendingTTL is how long a staged signup or reset request survives
// without administrator action before the sweeper removes it.
const PendingTTL = 24 * time.Hour

// PendingUser is a staged signup awaiting administrator disposition.
// The password is hashed at signup time and copied verbatim on approval.
type PendingUser struct {
	ID           string
	EmpID        string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// PendingReset is a staged password-reset request carrying a single-use
// token. Deleting the referenced user cascades to its pending resets.
type PendingReset struct {
	ID        string
	EmpID     string
	Email     string
	UserID    string
	Token     string
	CreatedAt time.Time
}

// IsExpired reports whether the record outlived its TTL (query-time check;
// the sweeper deletes expired rows on its own schedule).
func (p *PendingUser) IsExpired() bool {
	return time.Since(p.CreatedAt) > PendingTTL
}

func (p *PendingReset) IsExpired() bool {
	return time.Since(p.CreatedAt) > PendingTTL
}
