package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL DEFAULT 'user',
			name TEXT NOT NULL,
			username TEXT UNIQUE,
			bio TEXT,
			phone TEXT,
			verified INTEGER NOT NULL DEFAULT 0,
			online INTEGER NOT NULL DEFAULT 0,
			last_seen INTEGER,
			members INTEGER NOT NULL DEFAULT 0,
			subscribers INTEGER NOT NULL DEFAULT 0,
			business_hours TEXT,
			location TEXT,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name);

		CREATE TABLE IF NOT EXISTS profile_photos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			path TEXT NOT NULL,
			UNIQUE(profile_id, position)
		);

		CREATE TABLE IF NOT EXISTS profile_files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			size INTEGER NOT NULL DEFAULT 0,
			UNIQUE(profile_id, position)
		);

		CREATE TABLE IF NOT EXISTS profile_links (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			url TEXT NOT NULL,
			UNIQUE(profile_id, position)
		);

		CREATE TABLE IF NOT EXISTS view_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			profile_id INTEGER,
			photo_index INTEGER NOT NULL DEFAULT 0,
			tab INTEGER NOT NULL DEFAULT 0,
			expanded INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add latest_post and posted_at columns if missing
	_, _ = db.Exec(`ALTER TABLE profiles ADD COLUMN latest_post TEXT`)
	_, _ = db.Exec(`ALTER TABLE profiles ADD COLUMN posted_at INTEGER`)
	return nil
}
