// internal/state/interface.go
package state

import (
	"database/sql"

	"github.com/llehouerou/portrait/internal/profile"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	ListProfiles() ([]profile.Subject, error)
	GetProfile(id int64) (*profile.Subject, error)
	FindProfile(username string) (*profile.Subject, error)
	SaveProfile(s profile.Subject) (int64, error)
	SaveViewState(state ViewState)
	GetViewState() (*ViewState, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
