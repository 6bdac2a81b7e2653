package game

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Input events accepted on GameManager.InputChannel.
type (
	KeyEvent struct {
		Heading Heading
	}

	PointerAction int

	PointerEvent struct {
		Action   PointerAction
		Position Point
	}

	ModeEvent struct {
		Mode DeviceMode
	}
)

const (
	PointerPress PointerAction = iota
	PointerMove
	PointerRelease
)

// Messages published on GameManager.UpdateChannel.
type (
	FrameMsg struct {
		Snapshot Snapshot
	}

	SessionOverMsg struct {
		Snapshot Snapshot
		Result   Result
	}
)

// GameManager runs one session. The loop goroutine is the only writer of the
// session; everything else talks to it through channels.
type GameManager struct {
	InputChannel  chan any
	UpdateChannel chan tea.Msg
	OnFinish      func(Result)

	session      *Session
	tickDuration time.Duration
	clock        func() time.Duration
}

func NewGameManager(session *Session) *GameManager {
	start := time.Now()
	return &GameManager{
		InputChannel:  make(chan any, inputChannelBuffer),
		UpdateChannel: make(chan tea.Msg, updateChannelBuffer),
		session:       session,
		tickDuration:  GameTickDuration,
		clock:         func() time.Duration { return time.Since(start) },
	}
}

// StartGameLoop blocks until the session ends or ctx is cancelled.
func (gm *GameManager) StartGameLoop(ctx context.Context) {
	log.Debug("Game loop started.", "session", gm.session.ID)
	defer log.Debug("Game loop stopped.", "session", gm.session.ID)

	ticker := time.NewTicker(gm.tickDuration)
	defer ticker.Stop()

	gm.publishFrame()

	for {
		select {
		case <-ctx.Done():
			return
		case input := <-gm.InputChannel:
			gm.processPlayerInput(input)
		case <-ticker.C:
			if over := gm.processGameTick(); over {
				gm.finish(ctx)
				return
			}
		}
	}
}

func (gm *GameManager) processPlayerInput(input any) {
	in := &gm.session.Input
	switch ev := input.(type) {
	case KeyEvent:
		in.Keys.Set(ev.Heading, true)
	case PointerEvent:
		switch ev.Action {
		case PointerPress:
			in.Swipe.Press(ev.Position)
		case PointerMove:
			in.Swipe.Move(ev.Position)
		case PointerRelease:
			in.Swipe.Release(ev.Position)
		}
	case ModeEvent:
		in.Mode = ev.Mode
		in.Keys.Clear()
	default:
		log.Debug("Ignoring unknown input", "input", input)
	}
}

// processGameTick reports whether the session is over.
func (gm *GameManager) processGameTick() bool {
	result := gm.session.Tick(gm.clock())
	// terminals never report key releases, so a press counts for one tick
	gm.session.Input.Keys.Clear()

	if result.Move != Idle {
		gm.publishFrame()
	}
	return result.Status != StatusPlaying
}

func (gm *GameManager) publishFrame() {
	select {
	case gm.UpdateChannel <- FrameMsg{Snapshot: gm.session.Snapshot()}:
	default:
		// renderer is behind; it will catch up on the next frame
	}
}

func (gm *GameManager) finish(ctx context.Context) {
	result := gm.session.Result()
	if gm.OnFinish != nil {
		gm.OnFinish(result)
	}

	select {
	case gm.UpdateChannel <- SessionOverMsg{Snapshot: gm.session.Snapshot(), Result: result}:
	case <-ctx.Done():
	}
}
