package notation

import (
	"testing"

	"github.com/treepeck/chessgo/board"
	"github.com/treepeck/chessgo/fen"
)

func legalMovesOf(t *testing.T, fenStr string) ([]board.LegalMove, board.Color) {
	t.Helper()
	b, active, _, _, err := fen.Parse(fenStr)
	if err != nil {
		t.Fatalf("fen.Parse(%q): %v", fenStr, err)
	}
	return b.LegalMoves(active), active
}

func TestUCI(t *testing.T) {
	mv := board.NewMove(board.Pawn, board.White, 12, 28, board.Quiet) // e2e4
	if got := UCI(mv); got != "e2e4" {
		t.Fatalf("expected e2e4, got %s", got)
	}

	promo := board.NewPromotionMove(board.White, 52, 60, board.Quiet, board.Queen) // e7e8q
	if got := UCI(promo); got != "e7e8q" {
		t.Fatalf("expected e7e8q, got %s", got)
	}
}

func TestParseSANPawnPush(t *testing.T) {
	moves, color := legalMovesOf(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	mv, err := ParseSAN("e4", color, moves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mv.FromSquare() != 12 || mv.ToSquare() != 28 {
		t.Fatalf("expected e2e4, got from=%d to=%d", mv.FromSquare(), mv.ToSquare())
	}
}

func TestParseSANCapture(t *testing.T) {
	moves, color := legalMovesOf(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	mv, err := ParseSAN("exd5", color, moves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mv.Kind() != board.Attack || mv.ToSquare() != 35 {
		t.Fatalf("expected an attack onto d5, got kind=%d to=%d", mv.Kind(), mv.ToSquare())
	}
}

func TestParseSANDisambiguationByFile(t *testing.T) {
	// Knights on c2 and e2 can both reach d4; only the c-file one is
	// requested.
	moves, color := legalMovesOf(t, "4k3/8/8/8/8/8/2N1N3/4K3 w - - 0 1")
	mv, err := ParseSAN("Ncd4", color, moves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mv.FromSquare()%8 != 2 {
		t.Fatalf("expected the knight from the c-file, got from=%d", mv.FromSquare())
	}
}

func TestParseSANAmbiguousWithoutDisambiguation(t *testing.T) {
	moves, color := legalMovesOf(t, "4k3/8/8/8/8/8/2N1N3/4K3 w - - 0 1")
	if _, err := ParseSAN("Nd4", color, moves); err != ErrAmbiguousMove {
		t.Fatalf("expected ErrAmbiguousMove, got %v", err)
	}
}

func TestParseSANPromotion(t *testing.T) {
	moves, color := legalMovesOf(t, "k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	mv, err := ParseSAN("e8=Q", color, moves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mv.Promotion() != board.Queen {
		t.Fatalf("expected a queen promotion, got %d", mv.Promotion())
	}
}

func TestParseSANCastling(t *testing.T) {
	moves, color := legalMovesOf(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mv, err := ParseSAN("0-0", color, moves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mv.Kind() != board.Castle || mv.ToSquare() != 6 {
		t.Fatalf("expected a kingside castle to g1, got kind=%d to=%d", mv.Kind(), mv.ToSquare())
	}
}

func TestParseSANNoSuchMove(t *testing.T) {
	moves, color := legalMovesOf(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if _, err := ParseSAN("e5", color, moves); err != ErrNoSuchMove {
		t.Fatalf("expected ErrNoSuchMove, got %v", err)
	}
}

func TestSANRoundTripsThroughParse(t *testing.T) {
	moves, color := legalMovesOf(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	for _, lm := range moves {
		text := SAN(lm.Move, moves, false, false)
		got, err := ParseSAN(text, color, moves)
		if err != nil {
			t.Fatalf("ParseSAN(%q) failed to round-trip: %v", text, err)
		}
		if got != lm.Move {
			t.Fatalf("ParseSAN(SAN(m)) = %v, want %v", got, lm.Move)
		}
	}
}
