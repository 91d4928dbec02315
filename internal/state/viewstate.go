package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/portrait/internal/db"
)

// ViewState is what the profile screen restores on the next start.
type ViewState struct {
	ProfileID  int64
	PhotoIndex int
	Tab        int
	Expanded   bool
}

func getViewState(db *sql.DB) (*ViewState, error) {
	row := db.QueryRow(`
		SELECT profile_id, photo_index, tab, expanded
		FROM view_state WHERE id = 1
	`)

	var state ViewState
	var profileID sql.NullInt64

	err := row.Scan(&profileID, &state.PhotoIndex, &state.Tab, &state.Expanded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.ProfileID = dbutil.NullInt64Value(profileID)
	return &state, nil
}

func saveViewState(db *sql.DB, state ViewState) error {
	_, err := db.Exec(`
		INSERT INTO view_state (id, profile_id, photo_index, tab, expanded)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			profile_id = excluded.profile_id,
			photo_index = excluded.photo_index,
			tab = excluded.tab,
			expanded = excluded.expanded
	`, dbutil.NullID(state.ProfileID), state.PhotoIndex, state.Tab, state.Expanded)

	return err
}
