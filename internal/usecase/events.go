package usecase

import (
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
	"github.com/rocketscienceinc/wordwheel-backend/internal/grid"
	"github.com/rocketscienceinc/wordwheel-backend/internal/wheel"
)

type EventType string

const (
	EventLevelLoading     EventType = "level:loading"
	EventLevelLoaded      EventType = "level:loaded"
	EventLevelState       EventType = "level:state"
	EventWordFound        EventType = "word:found"
	EventWordAlreadyFound EventType = "word:already_found"
	EventWordMiss         EventType = "word:miss"
	EventLevelComplete    EventType = "level:complete"
	EventHint             EventType = "hint"
	EventNotice           EventType = "notice"
	EventUserUpdated      EventType = "user:updated"
)

const (
	NoticeAlreadyFound   = "Already found!"
	NoticeNotEnoughCoins = "Not enough coins!"
)

// Event is pushed to the Observer after the controller has released its lock.
type Event struct {
	Type    EventType
	Payload any
}

// Observer receives controller events. Notify must not call back into the controller.
type Observer interface {
	Notify(event Event)
}

type ObserverFunc func(event Event)

func (that ObserverFunc) Notify(event Event) {
	that(event)
}

type LoadingPayload struct {
	Index int `json:"index"`
}

type WordPayload struct {
	Word  string `json:"word"`
	Found int    `json:"found"`
	Total int    `json:"total"`
}

type CompletePayload struct {
	LevelID int `json:"levelId"`
	Reward  int `json:"reward"`
	Coins   int `json:"coins"`
}

type HintPayload struct {
	Length int    `json:"length"`
	Text   string `json:"text"`
}

type NoticePayload struct {
	Text string `json:"text"`
}

// Snapshot is everything a client needs to render the current level.
type Snapshot struct {
	State       State         `json:"state"`
	User        *entity.User  `json:"user,omitempty"`
	Level       *entity.Level `json:"level,omitempty"`
	Grid        *grid.Grid    `json:"grid,omitempty"`
	Letters     []string      `json:"letters"`
	Selected    []int         `json:"selected"`
	CurrentWord string        `json:"currentWord"`
	Path        []wheel.Point `json:"path"`
	HintPending bool          `json:"hintPending"`
}
