// Package draughts is a rules engine for international draughts on a 10x10 board.
//
// Squares are numbered 1 to 50 from Black's side. Captures are compulsory
// and the longest capture sequence must be played:
//
//	g := draughts.NewGame()
//	g.Move(32, 28)
//	fmt.Println(g.FEN())
package draughts

import (
	"io"

	"github.com/lgbarn/draughts-go/internal/config"
	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/engine"
	"github.com/lgbarn/draughts-go/internal/errors"
	"github.com/lgbarn/draughts-go/internal/output"
)

type (
	Game       = engine.Game
	GameOption = engine.GameOption
	Move       = draughts.Move
	MoveRecord = draughts.MoveRecord
	Square     = draughts.Square
	Piece      = draughts.Piece
	Colour     = draughts.Colour
	Board      = draughts.Board
	Header     = draughts.Header
	Config     = config.Config
)

// Sides and pieces.
const (
	White     = draughts.White
	Black     = draughts.Black
	NoColour  = draughts.NoColour
	Empty     = draughts.Empty
	WhiteMan  = draughts.WhiteMan
	WhiteKing = draughts.WhiteKing
	BlackMan  = draughts.BlackMan
	BlackKing = draughts.BlackKing
)

// DefaultFEN is the starting position.
const DefaultFEN = engine.DefaultFEN

// Errors returned by the library.
var (
	ErrInvalidFEN    = errors.ErrInvalidFEN
	ErrInvalidConfig = errors.ErrInvalidConfig
)

// NewGame creates a game at the starting position.
func NewGame(opts ...GameOption) *Game {
	return engine.NewGame(opts...)
}

// NewGameFromFEN creates a game at the position described by fen.
func NewGameFromFEN(fen string, opts ...GameOption) (*Game, error) {
	return engine.NewGameFromFEN(fen, opts...)
}

// ValidateFEN checks fen and returns it normalized.
func ValidateFEN(fen string) (string, error) {
	return engine.ValidateFEN(fen)
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return config.NewConfig()
}

// WithConfig sets the configuration of a new game.
func WithConfig(cfg *Config) GameOption {
	return engine.WithConfig(cfg)
}

// WritePDN writes g in PDN notation using the game's output settings.
func WritePDN(w io.Writer, g *Game) error {
	return output.WritePDN(w, g, g.Config().Output)
}

// ASCII draws the current position of g.
func ASCII(g *Game) string {
	return output.ASCII(g.Board(), g.Config().Output.Unicode)
}
