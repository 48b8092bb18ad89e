package model

// Incident action types recorded in the guard history database.
const (
	IncidentPunish        = "punish"
	IncidentExpire        = "expire"
	IncidentManualRelease = "manual_release"
)

// IncidentRecord represents one guard action in the history database.
// The table is named 'guard_incidents'. This is forensic history only; the
// in-memory ledger is the authority for who is currently punished.
type IncidentRecord struct {
	IncidentID int64  `db:"incident_id"` // Primary Key, Auto-increment
	GuildID    string `db:"guild_id"`
	UserID     string `db:"user_id"`
	Username   string `db:"username"`
	Action     string `db:"action"` // punish, expire, manual_release
	Detail     string `db:"detail"` // trigger action kind or release reason
	Timestamp  int64  `db:"timestamp"`
}
