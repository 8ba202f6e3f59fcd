package format_test

import (
	"strings"
	"testing"

	"github.com/treepeck/chessgo/format"
	"github.com/treepeck/chessgo/game"
)

func TestPositionContainsBoardAndMetadata(t *testing.T) {
	g := game.NewGame()
	out := format.Position(g.Current, g.ToMove)
	if !strings.Contains(out, "a  b  c  d  e  f  g  h") {
		t.Fatalf("expected a file-label footer, got:\n%s", out)
	}
	if !strings.Contains(out, "Active color: white") {
		t.Fatalf("expected the active color line, got:\n%s", out)
	}
	if !strings.Contains(out, "Castling rights: KQkq") {
		t.Fatalf("expected all castling rights listed, got:\n%s", out)
	}
}

func TestGameIncludesCounters(t *testing.T) {
	g := game.NewGame()
	out := format.Game(g)
	if !strings.Contains(out, "Halfmove clock: 0") {
		t.Fatalf("expected halfmove clock 0, got:\n%s", out)
	}
	if !strings.Contains(out, "Fullmove: 1") {
		t.Fatalf("expected fullmove 1, got:\n%s", out)
	}
}
