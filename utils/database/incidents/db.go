package incidents

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the guard history database and ensures the table exists. The
// history is append-only forensics; live punishment state never lives here.
func Init(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS guard_incidents (
	          incident_id INTEGER PRIMARY KEY AUTOINCREMENT,
	          guild_id TEXT NOT NULL,
	          user_id TEXT NOT NULL,
	          username TEXT NOT NULL,
	          action TEXT NOT NULL,
	          detail TEXT DEFAULT '',
	          timestamp INTEGER NOT NULL
	      );`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create guard_incidents table: %w", err)
	}

	return db, nil
}
