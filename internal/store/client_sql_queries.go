package store

// The local database keeps exactly one session row. Saving replaces it,
// clearing deletes it.
const (
	createSessionTable = `
		CREATE TABLE IF NOT EXISTS session (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			token    TEXT NOT NULL,
			user_id  TEXT NOT NULL,
			email    TEXT NOT NULL,
			name     TEXT NOT NULL,
			avatar   TEXT NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);`

	saveSession = `
		INSERT INTO session (id, token, user_id, email, name, avatar, saved_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			token    = excluded.token,
			user_id  = excluded.user_id,
			email    = excluded.email,
			name     = excluded.name,
			avatar   = excluded.avatar,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT token, user_id, email, name, avatar, saved_at
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session WHERE id = 1;`
)
