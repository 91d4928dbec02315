package ui

import "testing"

func TestBase_Contains(t *testing.T) {
	var b Base
	b.SetSize(10, 4)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 3, true},
		{10, 0, false},
		{0, 4, false},
		{-1, 2, false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
