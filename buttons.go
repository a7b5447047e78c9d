// buttons.go - Logical button to input-port-bit mapping

/*
invaders - an Intel 8080 Space Invaders arcade emulation core

(c) 2026 gocade contributors
https://github.com/gocade/invaders

License: GPLv3 or later
*/

package invaders

// Button names the cabinet's logical controls. The underlying wiring
// assigns each one a bit on input_1 or input_2 with its own active
// polarity; Machine.ButtonPress/ButtonRelease hide both details.
type Button int

const (
	ButtonCoin Button = iota
	ButtonP2Start
	ButtonP1Start
	ButtonP1Shoot
	ButtonP1Left
	ButtonP1Right
	ButtonTilt
	ButtonP2Shoot
	ButtonP2Left
	ButtonP2Right
)

// mask returns the bit this button occupies on its latch. Coin and
// the P1 controls share input_1's bit layout with Tilt/P2 controls on
// input_2; P1Shoot and P2Shoot happen to share a bit position (0x10)
// because they live on different latches.
func (b Button) mask() byte {
	switch b {
	case ButtonCoin:
		return 0x01
	case ButtonP2Start:
		return 0x02
	case ButtonP1Start:
		return 0x04
	case ButtonP1Shoot:
		return 0x10
	case ButtonP1Left:
		return 0x20
	case ButtonP1Right:
		return 0x40
	case ButtonTilt:
		return 0x04
	case ButtonP2Shoot:
		return 0x10
	case ButtonP2Left:
		return 0x20
	case ButtonP2Right:
		return 0x40
	default:
		return 0
	}
}

// onInput2 reports whether this button's latch is input_2 rather
// than input_1.
func (b Button) onInput2() bool {
	switch b {
	case ButtonTilt, ButtonP2Shoot, ButtonP2Left, ButtonP2Right:
		return true
	default:
		return false
	}
}

// activeLow reports whether pressing the button clears its bit
// (Coin is the one active-low control; release sets the bit back).
func (b Button) activeLow() bool {
	return b == ButtonCoin
}
