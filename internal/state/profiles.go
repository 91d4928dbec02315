package state

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	dbutil "github.com/llehouerou/portrait/internal/db"
	"github.com/llehouerou/portrait/internal/profile"
)

// ErrNotFound is returned when no profile matches a lookup.
var ErrNotFound = errors.New("profile not found")

const profileColumns = `
	id, kind, name, username, bio, phone, verified, online, last_seen,
	members, subscribers, business_hours, location, latest_post, posted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (profile.Subject, error) {
	var s profile.Subject
	var kind string
	var username, bio, phone, hours, location, post sql.NullString
	var lastSeen, postedAt sql.NullInt64

	err := row.Scan(&s.ID, &kind, &s.Name, &username, &bio, &phone, &s.Verified, &s.Online, &lastSeen,
		&s.Members, &s.Subscribers, &hours, &location, &post, &postedAt)
	if err != nil {
		return s, err
	}

	s.Kind, err = profile.ParseKind(kind)
	if err != nil {
		return s, err
	}
	s.Username = dbutil.NullStringValue(username)
	s.Bio = dbutil.NullStringValue(bio)
	s.Phone = dbutil.NullStringValue(phone)
	s.BusinessHours = dbutil.NullStringValue(hours)
	s.Location = dbutil.NullStringValue(location)
	s.LastSeen = dbutil.UnixValue(lastSeen)
	s.LatestPost = dbutil.NullStringValue(post)
	s.PostedAt = dbutil.UnixValue(postedAt)
	return s, nil
}

func (m *Manager) ListProfiles() ([]profile.Subject, error) {
	rows, err := m.db.Query(`SELECT ` + profileColumns + ` FROM profiles ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, err
	}

	var out []profile.Subject
	for rows.Next() {
		s, err := scanProfile(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, s)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}

	for i := range out {
		if err := loadChildren(m.db, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (m *Manager) GetProfile(id int64) (*profile.Subject, error) {
	row := m.db.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	return m.loadOne(row)
}

// FindProfile looks a profile up by username, ignoring case and a leading @.
func (m *Manager) FindProfile(username string) (*profile.Subject, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	row := m.db.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE username = ? COLLATE NOCASE`, username)
	return m.loadOne(row)
}

func (m *Manager) loadOne(row *sql.Row) (*profile.Subject, error) {
	s, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := loadChildren(m.db, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func loadChildren(db *sql.DB, s *profile.Subject) error {
	rows, err := db.Query(`SELECT path FROM profile_photos WHERE profile_id = ? ORDER BY position`, s.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			rows.Close()
			return err
		}
		s.Photos = append(s.Photos, p)
	}
	rows.Close()

	rows, err = db.Query(`SELECT name, size FROM profile_files WHERE profile_id = ? ORDER BY position`, s.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var f profile.File
		if err := rows.Scan(&f.Name, &f.Size); err != nil {
			rows.Close()
			return err
		}
		s.Files = append(s.Files, f)
	}
	rows.Close()

	rows, err = db.Query(`SELECT url FROM profile_links WHERE profile_id = ? ORDER BY position`, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return err
		}
		s.Links = append(s.Links, u)
	}
	return rows.Err()
}

// SaveProfile inserts or updates a profile with its photos, files and links.
// A profile without an ID is matched by username when one is set.
func (m *Manager) SaveProfile(s profile.Subject) (int64, error) {
	if strings.TrimSpace(s.Name) == "" {
		return 0, errors.New("profile name is required")
	}
	s.Username = strings.TrimPrefix(strings.TrimSpace(s.Username), "@")

	id := s.ID
	err := dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if id == 0 && s.Username != "" {
			err := tx.QueryRow(`SELECT id FROM profiles WHERE username = ? COLLATE NOCASE`, s.Username).Scan(&id)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return err
			}
		}

		args := []any{
			s.Kind.String(), s.Name, dbutil.NullString(s.Username), dbutil.NullString(s.Bio),
			dbutil.NullString(s.Phone), s.Verified, s.Online, dbutil.NullUnix(s.LastSeen),
			s.Members, s.Subscribers, dbutil.NullString(s.BusinessHours), dbutil.NullString(s.Location),
			dbutil.NullString(s.LatestPost), dbutil.NullUnix(s.PostedAt), time.Now().Unix(),
		}

		if id > 0 {
			res, err := tx.Exec(`
				UPDATE profiles SET kind = ?, name = ?, username = ?, bio = ?, phone = ?,
					verified = ?, online = ?, last_seen = ?, members = ?, subscribers = ?,
					business_hours = ?, location = ?, latest_post = ?, posted_at = ?, updated_at = ?
				WHERE id = ?
			`, append(args, id)...)
			if err != nil {
				return err
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return fmt.Errorf("profile %d: %w", id, ErrNotFound)
			}
		} else {
			res, err := tx.Exec(`
				INSERT INTO profiles (kind, name, username, bio, phone, verified, online, last_seen,
					members, subscribers, business_hours, location, latest_post, posted_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, args...)
			if err != nil {
				return err
			}
			if id, err = res.LastInsertId(); err != nil {
				return err
			}
		}

		return replaceChildren(tx, id, s)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func replaceChildren(tx *sql.Tx, id int64, s profile.Subject) error {
	for _, table := range []string{"profile_photos", "profile_files", "profile_links"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE profile_id = ?`, id); err != nil {
			return err
		}
	}

	for i, p := range s.Photos {
		if _, err := tx.Exec(`INSERT INTO profile_photos (profile_id, position, path) VALUES (?, ?, ?)`, id, i, p); err != nil {
			return err
		}
	}
	for i, f := range s.Files {
		if _, err := tx.Exec(`INSERT INTO profile_files (profile_id, position, name, size) VALUES (?, ?, ?, ?)`,
			id, i, f.Name, int64(f.Size)); err != nil { //nolint:gosec // file sizes fit in int64
			return err
		}
	}
	for i, u := range s.Links {
		if _, err := tx.Exec(`INSERT INTO profile_links (profile_id, position, url) VALUES (?, ?, ?)`, id, i, u); err != nil {
			return err
		}
	}
	return nil
}
