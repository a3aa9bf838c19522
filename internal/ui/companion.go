package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/masa/internal/logbook"
)

// frameEvery is how long each animation frame stays on screen.
const frameEvery = 500 * time.Millisecond

// Frame is what the companion panel shows at one instant.
type Frame struct {
	Lines   []string
	Color   lipgloss.Color
	Caption string
}

var workFrames = [][]string{
	{
		`   (\_/)      `,
		`   ( •_•)     `,
		`  / >⌨  ___  `,
		` /_____|___| `,
	},
	{
		`   (\_/)      `,
		`   ( •_•)     `,
		`  / >⌨< ___  `,
		` /_____|___| `,
	},
	{
		`   (\_/)      `,
		`   (•_• )     `,
		`  / >⌨  ___  `,
		` /_____|___| `,
	},
	{
		`   (\_/)      `,
		`   (•_• )     `,
		`   >⌨ <___   `,
		` /_____|___| `,
	},
}

var breakFrames = [][]string{
	{
		`   (\_/)  ~   `,
		`   ( ^.^) c[] `,
		`   /    \     `,
		`  (______)    `,
	},
	{
		`   (\_/)   ~  `,
		`   ( ^.^)c[]  `,
		`   /    \     `,
		`  (______)    `,
	},
	{
		`   (\_/)  ~   `,
		`   ( -.-) c[] `,
		`   /    \     `,
		`  (______)    `,
	},
}

var idleFrames = [][]string{
	{
		`   (\_/)   z  `,
		`   ( -.-)     `,
		`  o(____)     `,
		`              `,
	},
	{
		`   (\_/)  zZ  `,
		`   ( -.-)     `,
		`  o(____)     `,
		`              `,
	},
	{
		`   (\_/) zZz  `,
		`   ( -.-)     `,
		`  o(____)     `,
		`              `,
	},
}

// Companion returns the frame for mode after elapsed time in that mode. It is
// a pure function of its inputs.
func Companion(mode logbook.Mode, elapsed time.Duration) Frame {
	var (
		frames  [][]string
		caption string
	)
	switch mode {
	case logbook.ModeWorking:
		frames, caption = workFrames, "heads down"
	case logbook.ModeBreak:
		frames, caption = breakFrames, "recharging"
	default:
		frames, caption = idleFrames, "asleep"
	}

	if elapsed < 0 {
		elapsed = 0
	}
	idx := int(elapsed/frameEvery) % len(frames)
	return Frame{
		Lines:   frames[idx],
		Color:   modeColor(mode),
		Caption: caption,
	}
}
