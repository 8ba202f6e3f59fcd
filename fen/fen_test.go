package fen

import (
	"testing"

	"github.com/treepeck/chessgo/board"
	"github.com/treepeck/chessgo/squareset"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestParseStartingPosition(t *testing.T) {
	b, active, halfmove, fullmove, err := Parse(startFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active != board.White {
		t.Fatalf("expected white to move")
	}
	if halfmove != 0 || fullmove != 1 {
		t.Fatalf("expected 0 halfmove, 1 fullmove, got %d %d", halfmove, fullmove)
	}
	if b.Castling() != board.AllCastlingRights {
		t.Fatalf("expected all castling rights to survive")
	}
	if squareCount := squareset.CountBits(b.Occupied()); squareCount != 32 {
		t.Fatalf("expected 32 occupied squares, got %d", squareCount)
	}
}

func TestRoundTrip(t *testing.T) {
	b, active, halfmove, fullmove, err := Parse(startFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Serialize(b, active, halfmove, fullmove)
	if got != startFEN {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, startFEN)
	}
}

func TestParseEnPassantTarget(t *testing.T) {
	b, _, _, _, err := Parse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.EnPassant() == 0 {
		t.Fatalf("expected a non-empty en-passant target")
	}
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	_, _, _, _, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0")
	if err == nil {
		t.Fatalf("expected an error for a truncated FEN string")
	}
}

func TestParseNoCastlingRights(t *testing.T) {
	b, _, _, _, err := Parse("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Castling() != 0 {
		t.Fatalf("expected no castling rights")
	}
}
