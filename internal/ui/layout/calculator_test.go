package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "no bars",
			windowHeight: 40,
			want:         40,
		},
		{
			name:         "status bar",
			windowHeight: 40,
			opts:         ContentOpts{StatusBarHeight: 1},
			want:         39,
		},
		{
			name:         "status and help",
			windowHeight: 40,
			opts:         ContentOpts{StatusBarHeight: 1, HelpHeight: 1},
			want:         38,
		},
		{
			name:         "tiny window",
			windowHeight: 1,
			opts:         ContentOpts{StatusBarHeight: 1, HelpHeight: 1},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestActionRowWidth(t *testing.T) {
	tests := []struct {
		n, width int
		want     int
	}{
		{0, 80, 0},
		{1, 80, 10},
		{4, 80, 43},
		{4, 30, 28},
	}

	for _, tt := range tests {
		if got := ActionRowWidth(tt.n, tt.width); got != tt.want {
			t.Errorf("ActionRowWidth(%d, %d) = %d, want %d", tt.n, tt.width, got, tt.want)
		}
	}
}

func TestHeaderGeometry(t *testing.T) {
	tests := []struct {
		name         string
		opts         HeaderOpts
		wantDefault  float64
		wantExpanded float64
		wantAvatar   float64
	}{
		{
			name:         "regular",
			opts:         HeaderOpts{Width: 80, AreaHeight: 38, Actions: 3},
			wantDefault:  12,
			wantExpanded: 38,
			wantAvatar:   4,
		},
		{
			name:         "wide and short photo capped by area",
			opts:         HeaderOpts{Width: 200, AreaHeight: 30},
			wantDefault:  12,
			wantExpanded: 30,
			wantAvatar:   4,
		},
		{
			name:         "narrow keeps square photo",
			opts:         HeaderOpts{Width: 40, AreaHeight: 40},
			wantDefault:  12,
			wantExpanded: 20,
			wantAvatar:   4,
		},
		{
			name:         "compact",
			opts:         HeaderOpts{Width: 80, AreaHeight: 20},
			wantDefault:  8,
			wantExpanded: 20,
			wantAvatar:   2,
		},
		{
			name:         "very narrow never below default",
			opts:         HeaderOpts{Width: 10, AreaHeight: 30},
			wantDefault:  12,
			wantExpanded: 12,
			wantAvatar:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := HeaderGeometry(tt.opts)
			assert.InDelta(t, tt.wantDefault, g.DefaultHeight, 1e-9)
			assert.InDelta(t, tt.wantExpanded, g.ExpandedHeight, 1e-9)
			assert.InDelta(t, tt.wantAvatar, g.AvatarHeight, 1e-9)
			assert.LessOrEqual(t, g.MinimizedHeight, g.DefaultHeight)
			assert.LessOrEqual(t, g.DefaultHeight, g.ExpandedHeight)
		})
	}
}

func TestHeaderGeometry_ActionRowFitsAboveBottom(t *testing.T) {
	for _, area := range []int{20, 38} {
		g := HeaderGeometry(HeaderOpts{Width: 80, AreaHeight: area, Actions: 3})
		assert.Greater(t, g.ActionRowTop(), g.SubtitleRow, "area %d", area)
	}
}
