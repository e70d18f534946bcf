package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"setgame/pkg/deck"
)

// Game is a solitaire game of Set
// Sets are removed from the board until the deck runs out and no set remains.
type Game struct {
	id      string
	options Options
	deck    *deck.Deck
	board   deck.Board
	sets    [][]*deck.Card
	state   State
	steps   int
	logger  logrus.FieldLogger

	startTime time.Time
	endTime   time.Time
}

// NewGame returns a new game with the initial board dealt
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	d := deck.New(options.DeckSize, options.generator())

	g := &Game{
		id:        id,
		options:   options,
		deck:      d,
		sets:      make([][]*deck.Card, 0),
		state:     StatePlaying,
		logger:    logger.WithField("game", id),
		startTime: time.Now(),
	}

	g.board.AddCards(d.Deal(options.BoardSize)...)
	g.logger.WithFields(logrus.Fields{
		"deckSize":  options.DeckSize,
		"boardSize": g.board.Len(),
		"seed":      options.Seed,
	}).Debug("dealt initial board")

	return g, nil
}

// Step runs one turn of the game
// Returns false once the game is done.
func (g *Game) Step() bool {
	if g.state == StateDone {
		return false
	}

	g.steps++

	if set := g.board.RemoveSet(); set != nil {
		g.sets = append(g.sets, set)
		g.logger.WithField("set", deck.CardsToString(set)).Debug("found set")
	} else if g.deck.IsEmpty() {
		g.finish()
		return false
	}

	g.board.AddCards(g.deck.Deal(g.options.DealSize)...)
	return true
}

func (g *Game) finish() {
	g.state = StateDone
	g.endTime = time.Now()

	g.logger.WithFields(logrus.Fields{
		"sets":      len(g.sets),
		"unmatched": g.board.Len(),
		"steps":     g.steps,
	}).Info("game over")
}

// Play runs the game to completion
func (g *Game) Play() *Game {
	for g.Step() {
	}

	return g
}

// ID returns the unique game identifier
func (g *Game) ID() string {
	return g.id
}

// State returns the current state
func (g *Game) State() State {
	return g.state
}

// Board returns a copy of the cards on the board
func (g *Game) Board() []*deck.Card {
	return g.board.Clone()
}

// Sets returns a copy of the sets found so far, in the order they were found
func (g *Game) Sets() [][]*deck.Card {
	sets := make([][]*deck.Card, len(g.sets))
	copy(sets, g.sets)
	return sets
}

// CardsLeft returns the number of undealt cards
func (g *Game) CardsLeft() int {
	return g.deck.CardsLeft()
}

// Report returns a summary of the game
func (g *Game) Report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d unmatched cards on table\n", g.board.Len())
	fmt.Fprintf(&sb, "%d cards in deck\n", g.deck.CardsLeft())
	sb.WriteString("SETS FOUND:\n")
	for _, set := range g.sets {
		sb.WriteString(deck.CardsToString(set))
		sb.WriteString("\n")
	}

	return sb.String()
}
