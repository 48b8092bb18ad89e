package guard

import (
	"sync"
	"time"
)

// Ledger is the in-memory record of currently punished actors, keyed by user
// ID. It is the sole authority for "who is punished right now"; the role on
// the platform is a projection of it. State is intentionally process-lifetime
// only and lost on restart.
//
// Event handlers run on separate goroutines, so every access goes through
// the mutex.
type Ledger struct {
	mu      sync.Mutex
	entries map[string]time.Time // user ID -> expiry (UTC)
}

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]time.Time)}
}

// Punish records an expiry for the user, overwriting any existing entry.
// Re-punishing always resets to the new expiry; durations never stack.
func (l *Ledger) Punish(userID string, expiry time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[userID] = expiry
}

// Release removes the user's entry. Releasing an unpunished user is a no-op.
func (l *Ledger) Release(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, userID)
}

// Expiry returns the user's expiry and whether an entry exists.
func (l *Ledger) Expiry(userID string) (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	exp, ok := l.entries[userID]
	return exp, ok
}

// Punished reports whether the user currently has a ledger entry.
func (l *Ledger) Punished(userID string) bool {
	_, ok := l.Expiry(userID)
	return ok
}

// Len returns the number of active entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// CollectExpired removes every entry whose expiry is at or before now and
// returns the affected user IDs. Removal happens under the lock before the
// IDs are handed back, so a concurrent Punished() never sees an entry the
// sweep has already claimed.
func (l *Ledger) CollectExpired(now time.Time) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var expired []string
	for userID, exp := range l.entries {
		if !exp.After(now) {
			expired = append(expired, userID)
			delete(l.entries, userID)
		}
	}
	return expired
}
