package game

import (
	"time"

	"setgame/pkg/deck"
)

// GameLog is a JSON friendly record of a game
type GameLog struct {
	ID        string         `json:"id"`
	Options   Options        `json:"options"`
	State     State          `json:"state"`
	Steps     int            `json:"steps"`
	Sets      [][]*deck.Card `json:"sets"`
	Board     []*deck.Card   `json:"board"`
	CardsLeft int            `json:"cardsLeft"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
}

// GameLog returns the log of the game so far
// EndTime is zero until the game is done.
func (g *Game) GameLog() *GameLog {
	return &GameLog{
		ID:        g.id,
		Options:   g.options,
		State:     g.state,
		Steps:     g.steps,
		Sets:      g.Sets(),
		Board:     g.Board(),
		CardsLeft: g.deck.CardsLeft(),
		StartTime: g.startTime,
		EndTime:   g.endTime,
	}
}
