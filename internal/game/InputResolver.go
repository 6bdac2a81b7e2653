package game

import "fmt"

type DeviceMode int

const (
	ModeKeyboard DeviceMode = iota
	ModeTouch
	ModeAutopilot
)

var DeviceModes = []DeviceMode{ModeKeyboard, ModeTouch, ModeAutopilot}

func (m DeviceMode) String() string {
	switch m {
	case ModeKeyboard:
		return "Keyboard"
	case ModeTouch:
		return "Swipe"
	case ModeAutopilot:
		return "Autopilot"
	default:
		return fmt.Sprintf("DeviceMode(%d)", int(m))
	}
}

// KeyState holds the four arrow keys independently.
type KeyState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

func (k *KeyState) Set(h Heading, down bool) {
	switch h {
	case Left:
		k.Left = down
	case Right:
		k.Right = down
	case Up:
		k.Up = down
	case Down:
		k.Down = down
	}
}

func (k *KeyState) Clear() {
	*k = KeyState{}
}

// Heading picks a single key: left, then right, then up, then down.
func (k KeyState) Heading() (Heading, bool) {
	switch {
	case k.Left:
		return Left, true
	case k.Right:
		return Right, true
	case k.Up:
		return Up, true
	case k.Down:
		return Down, true
	}
	return Up, false
}

type InputResolver struct {
	Mode      DeviceMode
	Keys      KeyState
	Swipe     SwipeDetector
	Autopilot Strategy
}

// Resolve returns at most one requested heading for this tick.
func (r *InputResolver) Resolve(view Snapshot) (Heading, bool) {
	switch r.Mode {
	case ModeTouch:
		return r.Swipe.Direction()
	case ModeAutopilot:
		if r.Autopilot == nil {
			return Up, false
		}
		return r.Autopilot.NextHeading(view)
	default:
		return r.Keys.Heading()
	}
}
