package incidents

import (
	"fmt"
	"time"

	"discord-guard/model"

	"github.com/jmoiron/sqlx"
)

// Add inserts an incident record and returns its ID.
func Add(db *sqlx.DB, record model.IncidentRecord) (int64, error) {
	query := `INSERT INTO guard_incidents (guild_id, user_id, username, action, detail, timestamp)
			  VALUES (:guild_id, :user_id, :username, :action, :detail, :timestamp)`

	result, err := db.NamedExec(query, record)
	if err != nil {
		return 0, fmt.Errorf("failed to insert incident record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

// RecentByGuild returns the newest incidents for a guild, newest first.
func RecentByGuild(db *sqlx.DB, guildID string, limit int) ([]model.IncidentRecord, error) {
	var records []model.IncidentRecord
	query := `SELECT * FROM guard_incidents WHERE guild_id = ? ORDER BY incident_id DESC LIMIT ?`
	if err := db.Select(&records, query, guildID, limit); err != nil {
		return nil, fmt.Errorf("failed to get incidents for guild %s: %w", guildID, err)
	}
	return records, nil
}

// CountByActionSince returns incident counts per action for a guild since
// the given time.
func CountByActionSince(db *sqlx.DB, guildID string, since time.Time) (map[string]int, error) {
	rows, err := db.Queryx(`SELECT action, COUNT(*) AS n FROM guard_incidents
		WHERE guild_id = ? AND timestamp >= ? GROUP BY action`, guildID, since.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents for guild %s: %w", guildID, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, err
		}
		counts[action] = n
	}
	return counts, rows.Err()
}
