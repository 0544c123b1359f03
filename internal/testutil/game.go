// Package testutil provides shared test utilities for the chess-engine-go project.
// These helpers build boards and scripted games so tests outside the engine
// package can set up positions in one line.
package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/player"
)

// FoolsMate is the shortest game ending in checkmate.
var FoolsMate = []string{"f2f3", "e7e5", "g2g4", "d8h4"}

// ApplyMoves plays coordinate moves on b, checking each against the legal
// move list. It stops at the first move that does not parse or is illegal.
func ApplyMoves(b *engine.Board, moves ...string) error {
	for _, s := range moves {
		m, err := chess.ParseMove(s)
		if err != nil {
			return err
		}
		lm, ok := b.IsLegal(m)
		if !ok {
			return fmt.Errorf("move %s is not legal at turn %d (%s)", s, b.Turn(), b.FEN())
		}
		if err := b.Execute(lm.WithPromotion(m.Promotion)); err != nil {
			return fmt.Errorf("execute %s: %w", s, err)
		}
	}
	return nil
}

// MustBoard parses fen and plays moves on the result. An empty fen starts
// from the initial position. It calls t.Fatal on any failure.
func MustBoard(t *testing.T, fen string, moves ...string) *engine.Board {
	t.Helper()
	if fen == "" {
		fen = engine.InitialFEN
	}
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	if err := ApplyMoves(b, moves...); err != nil {
		t.Fatalf("failed to apply moves: %v", err)
	}
	return b
}

// ScriptedGame returns a game on b whose players replay the given moves in
// order, alternating sides starting with the side to move.
func ScriptedGame(t *testing.T, b *engine.Board, moves ...string) *game.Game {
	t.Helper()
	var scripts [chess.NumColours][]string
	c := b.ActiveColour()
	for _, m := range moves {
		scripts[c] = append(scripts[c], m)
		c = c.Opposite()
	}

	var players [chess.NumColours]*player.Player
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		s, err := player.NewScriptedStrategy(scripts[colour]...)
		if err != nil {
			t.Fatalf("failed to build script for %s: %v", colour, err)
		}
		players[colour] = player.New("", b.Side(colour), s)
	}

	g, err := game.NewFromBoard(b, players[chess.White], players[chess.Black])
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}
	return g
}
