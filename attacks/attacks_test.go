package attacks

import (
	"testing"

	"github.com/treepeck/chessgo/squareset"
)

func TestMain(m *testing.M) {
	InitTables()
	m.Run()
}

func TestKnightCentral(t *testing.T) {
	origin := squareset.Square[27] // d4
	got := Knight(origin, squareset.Empty, squareset.Universe)
	want := squareset.Square[10] | squareset.Square[12] | squareset.Square[17] |
		squareset.Square[21] | squareset.Square[33] | squareset.Square[37] |
		squareset.Square[42] | squareset.Square[44]
	if got != want {
		t.Fatalf("expected %x got %x", want, got)
	}
}

func TestKnightCorner(t *testing.T) {
	origin := squareset.Square[0] // a1
	got := Knight(origin, squareset.Empty, squareset.Universe)
	want := squareset.Square[10] | squareset.Square[17]
	if got != want {
		t.Fatalf("expected %x got %x", want, got)
	}
}

func TestKnightBlockedByFriend(t *testing.T) {
	origin := squareset.Square[0] // a1
	friend := squareset.Square[17]
	unoccupied := squareset.Universe ^ friend
	got := Knight(origin, squareset.Empty, unoccupied)
	want := squareset.Square[10]
	if got != want {
		t.Fatalf("friendly piece should block its own square, got %x want %x", got, want)
	}
}

func TestKingCentral(t *testing.T) {
	origin := squareset.Square[27] // d4
	got := King(origin, squareset.Empty, squareset.Universe)
	if squareset.CountBits(got) != 8 {
		t.Fatalf("king in the center should reach 8 squares, got %d", squareset.CountBits(got))
	}
}

func TestBishopOpenBoard(t *testing.T) {
	origin := squareset.Square[27] // d4
	got := Bishop(origin, squareset.Empty, squareset.Universe)
	if squareset.CountBits(got) != 13 {
		t.Fatalf("bishop on d4 on an empty board should reach 13 squares, got %d", squareset.CountBits(got))
	}
}

func TestRookOpenBoard(t *testing.T) {
	origin := squareset.Square[27] // d4
	got := Rook(origin, squareset.Empty, squareset.Universe)
	if squareset.CountBits(got) != 14 {
		t.Fatalf("rook on d4 on an empty board should reach 14 squares, got %d", squareset.CountBits(got))
	}
}

func TestRookStopsAtFriendlyBlocker(t *testing.T) {
	origin := squareset.Square[0] // a1
	friend := squareset.Square[24] // a4
	unoccupied := squareset.Universe ^ friend
	got := Rook(origin, squareset.Empty, unoccupied)
	if got&friend != 0 {
		t.Fatalf("rook should not be able to capture its own piece")
	}
	if got&squareset.Square[16] == 0 { // a3 still reachable
		t.Fatalf("rook should reach up to, but not past, the blocker")
	}
}

func TestRookCapturesEnemyBlocker(t *testing.T) {
	origin := squareset.Square[0] // a1
	enemy := squareset.Square[24] // a4
	unoccupied := squareset.Universe ^ enemy
	got := Rook(origin, enemy, unoccupied)
	if got&enemy == 0 {
		t.Fatalf("rook should be able to capture an enemy blocker")
	}
	if got&squareset.Square[32] != 0 { // a5 beyond the blocker
		t.Fatalf("rook should not see past a blocker, friendly or not")
	}
}

func TestQueenIsBishopUnionRook(t *testing.T) {
	origin := squareset.Square[27]
	got := Queen(origin, squareset.Empty, squareset.Universe)
	want := Bishop(origin, squareset.Empty, squareset.Universe) | Rook(origin, squareset.Empty, squareset.Universe)
	if got != want {
		t.Fatalf("queen should equal bishop union rook")
	}
}

func TestPawnQuietSingleAndDouble(t *testing.T) {
	origin := squareset.Square[12] // e2
	got := PawnQuiet(origin, White, squareset.Universe)
	want := squareset.Square[20] | squareset.Square[28] // e3, e4
	if got != want {
		t.Fatalf("expected %x got %x", want, got)
	}
}

func TestPawnQuietBlockedDouble(t *testing.T) {
	origin := squareset.Square[12] // e2
	blocker := squareset.Square[28]
	unoccupied := squareset.Universe ^ blocker
	got := PawnQuiet(origin, White, unoccupied)
	want := squareset.Square[20]
	if got != want {
		t.Fatalf("double push should be blocked when e4 is occupied, got %x want %x", got, want)
	}
}

func TestPawnQuietNotOnHomeRank(t *testing.T) {
	origin := squareset.Square[20] // e3
	got := PawnQuiet(origin, White, squareset.Universe)
	want := squareset.Square[28]
	if got != want {
		t.Fatalf("pawn not on its home rank should never get a double push, got %x want %x", got, want)
	}
}

func TestPawnCapturesIncludesEnPassantTarget(t *testing.T) {
	origin := squareset.Square[36] // e5
	epTarget := squareset.Square[45] // f6
	got := PawnCaptures(origin, White, epTarget)
	if got != epTarget {
		t.Fatalf("pawn capture set must include the supplied en-passant target")
	}
}

func TestBlackPawnCapturesDirection(t *testing.T) {
	origin := squareset.Square[52] // e7
	enemy := squareset.Square[43] | squareset.Square[45] // d6, f6
	got := PawnCaptures(origin, Black, enemy)
	if got != enemy {
		t.Fatalf("expected %x got %x", enemy, got)
	}
}
