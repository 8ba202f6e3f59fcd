package perft

import (
	"testing"

	"github.com/treepeck/chessgo/board"
	"github.com/treepeck/chessgo/fen"
)

func parseOrFatal(t *testing.T, fenStr string) (board.Board, board.Color) {
	t.Helper()
	b, active, _, _, err := fen.Parse(fenStr)
	if err != nil {
		t.Fatalf("fen.Parse(%q): %v", fenStr, err)
	}
	return b, active
}

func TestPerftStartingPosition(t *testing.T) {
	b, active := parseOrFatal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	want := []int{1, 20, 400, 8902, 197281}
	for depth, expect := range want {
		if got := Perft(b, active, depth); got != expect {
			t.Errorf("perft(start, %d) = %d, want %d", depth, got, expect)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	b, active := parseOrFatal(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	want := []int{1, 48, 2039, 97862}
	for depth, expect := range want {
		if got := Perft(b, active, depth); got != expect {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", depth, got, expect)
		}
	}
}

func TestPerftPositionThree(t *testing.T) {
	b, active := parseOrFatal(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	want := []int{1, 14, 191, 2812}
	for depth, expect := range want {
		if got := Perft(b, active, depth); got != expect {
			t.Errorf("perft(position3, %d) = %d, want %d", depth, got, expect)
		}
	}
}

func TestPerftPositionFive(t *testing.T) {
	b, active := parseOrFatal(t, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	want := []int{1, 44, 1486, 62379}
	for depth, expect := range want {
		if got := Perft(b, active, depth); got != expect {
			t.Errorf("perft(position5, %d) = %d, want %d", depth, got, expect)
		}
	}
}

func TestPerftPositionSix(t *testing.T) {
	b, active := parseOrFatal(t, "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10")
	want := []int{1, 46, 2079, 89890}
	for depth, expect := range want {
		if got := Perft(b, active, depth); got != expect {
			t.Errorf("perft(position6, %d) = %d, want %d", depth, got, expect)
		}
	}
}
