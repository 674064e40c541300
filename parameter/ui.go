package parameter

// Layout & Margins
const (
	// TopMargin for the race status line
	TopMargin = 1

	// BottomMargin for the key help line
	BottomMargin = 1
)

// Notices, in frames at the tick rate
const (
	// NoticeFrames is how long a lap outcome banner stays up
	NoticeFrames = 90

	// WrongWayFrames is how long the wrong-way warning stays up
	WrongWayFrames = 60
)

// HelpText is the key reference shown under the track
const HelpText = "P1 WASD+Space  P2 arrows+Enter  Esc pause  r restart  n next track  q quit"
