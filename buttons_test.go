// buttons_test.go - Tests for the logical button -> port bit mapping

package invaders

import "testing"

func TestButtonTable(t *testing.T) {
	cases := []struct {
		button    Button
		mask      byte
		onInput2  bool
		activeLow bool
	}{
		{ButtonCoin, 0x01, false, true},
		{ButtonP2Start, 0x02, false, false},
		{ButtonP1Start, 0x04, false, false},
		{ButtonP1Shoot, 0x10, false, false},
		{ButtonP1Left, 0x20, false, false},
		{ButtonP1Right, 0x40, false, false},
		{ButtonTilt, 0x04, true, false},
		{ButtonP2Shoot, 0x10, true, false},
		{ButtonP2Left, 0x20, true, false},
		{ButtonP2Right, 0x40, true, false},
	}

	for _, tc := range cases {
		if got := tc.button.mask(); got != tc.mask {
			t.Errorf("Button(%d).mask() = 0x%02X, want 0x%02X", tc.button, got, tc.mask)
		}
		if got := tc.button.onInput2(); got != tc.onInput2 {
			t.Errorf("Button(%d).onInput2() = %v, want %v", tc.button, got, tc.onInput2)
		}
		if got := tc.button.activeLow(); got != tc.activeLow {
			t.Errorf("Button(%d).activeLow() = %v, want %v", tc.button, got, tc.activeLow)
		}
	}
}
