package server

const (
	tierNormal  = "normal"
	tierWarning = "warning"
	tierDanger  = "danger"
	tierExpired = "expired"
)

const (
	resourceText   = "text"
	resourceAudio  = "audio"
	resourceImage  = "image"
	resourceVideo  = "video"
	resourceAnswer = "answer"
)

const (
	timerActionStart = "start"
	timerActionPause = "pause"
	timerActionReset = "reset"
)

const (
	moveDirectionUp   = "up"
	moveDirectionDown = "down"
)

const (
	maxTimerMinutes = 60
	maxTimerSeconds = 59
)

type NightSummary struct {
	ID        string
	ShareCode string
	Rounds    int
	Completed int
}

// Night is one game-night session: an ordered round list plus the
// bookkeeping the timers and the persistence slot hang off.
type Night struct {
	ID          string
	DBID        uint
	ShareCode   string
	Rounds      []Round
	NextRoundID int
	Celebrated  bool
}

type Round struct {
	ID             int
	GameName       string
	GameIcon       string
	PromptMarkup   string
	ResourceMarkup string
	TimerMinutes   int
	TimerSeconds   int
	Completed      bool
}

// ConfiguredSeconds is the countdown duration set on the round's inputs.
func (r Round) ConfiguredSeconds() int {
	return r.TimerMinutes*60 + r.TimerSeconds
}
