package profilecontent

import "github.com/llehouerou/portrait/internal/profile"

// Source is the component name carried by this package's action messages.
const Source = "profilecontent"

// TabChanged reports that the shared-content tab was switched.
type TabChanged struct {
	Tab profile.Tab
}

// ActionType implements action.Action.
func (TabChanged) ActionType() string { return "profilecontent.tab_changed" }
