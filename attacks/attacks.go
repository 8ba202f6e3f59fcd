// Package attacks implements the per-piece target generators of §4.B: given
// a source square and the occupancy of the position (friend/foe), each
// function returns the set of squares that piece kind can reach. Knight and
// king patterns are precomputed once into lookup tables; sliding-piece
// (bishop/rook/queen) targets are derived on demand from the square-set
// directional fills, per the algorithm the specification spells out rather
// than from a magic-bitboard table.
package attacks

import (
	"sync"

	"github.com/treepeck/chessgo/squareset"
)

// Color is the side to move or the owner of a piece. White is true, black
// is false, matching the binary representation the specification calls
// for; Opponent implements "arithmetic not color".
type Color bool

const (
	White Color = true
	Black Color = false
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return !c }

var (
	knightTable [64]squareset.Set
	kingTable   [64]squareset.Set
	pawnTable   [2][64]squareset.Set // indexed by Color (White=1, Black=0)

	initOnce sync.Once
)

// InitTables precomputes the knight, king, and pawn attack tables. It is
// safe to call more than once or concurrently; only the first call does
// any work. Knight, King, and PawnCaptures read these tables, so
// InitTables must run before any move is generated.
func InitTables() {
	initOnce.Do(func() {
		for sq := range 64 {
			origin := squareset.Square[sq]
			knightTable[sq] = genKnightPattern(origin)
			kingTable[sq] = genKingPattern(origin)
			pawnTable[colorIndex(White)][sq] = genPawnCapturePattern(origin, White)
			pawnTable[colorIndex(Black)][sq] = genPawnCapturePattern(origin, Black)
		}
	})
}

func colorIndex(c Color) int {
	if c {
		return 1
	}
	return 0
}

// genKnightPattern returns the raw knight geometry from a single origin
// square, ignoring occupancy: the east/west one- and two-file offsets
// shifted two and one ranks respectively.
func genKnightPattern(origin squareset.Set) squareset.Set {
	e1 := squareset.East(origin)
	w1 := squareset.West(origin)
	e2 := squareset.East(e1)
	w2 := squareset.West(w1)
	oneFile := e1 | w1
	twoFile := e2 | w2
	return squareset.North(squareset.North(oneFile)) |
		squareset.South(squareset.South(oneFile)) |
		squareset.North(twoFile) |
		squareset.South(twoFile)
}

// genKingPattern returns the raw king geometry: the union of all eight
// single-step shifts.
func genKingPattern(origin squareset.Set) squareset.Set {
	return squareset.North(origin) | squareset.South(origin) |
		squareset.East(origin) | squareset.West(origin) |
		squareset.NorthEast(origin) | squareset.NorthWest(origin) |
		squareset.SouthEast(origin) | squareset.SouthWest(origin)
}

// genPawnCapturePattern returns the two diagonal capture squares for a pawn
// of the given color standing on origin, ignoring occupancy.
func genPawnCapturePattern(origin squareset.Set, color Color) squareset.Set {
	if color == White {
		return squareset.NorthEast(origin) | squareset.NorthWest(origin)
	}
	return squareset.SouthEast(origin) | squareset.SouthWest(origin)
}

// Knight returns the squares a knight on origin can reach: enemy pieces to
// capture, or empty squares to move to quietly.
func Knight(origin squareset.Set, enemy, unoccupied squareset.Set) squareset.Set {
	return knightTable[squareset.BitScan(origin)] & (enemy | unoccupied)
}

// King returns the squares a king on origin can reach. Whether the
// destination is safe from attack is not this generator's concern; see
// board.Board for the legality filter.
func King(origin squareset.Set, enemy, unoccupied squareset.Set) squareset.Set {
	return kingTable[squareset.BitScan(origin)] & (enemy | unoccupied)
}

// slide unions, over the four directions passed in, the directional fill
// over unoccupied extended one further step into enemy -- the fill already
// includes every empty square along the ray (a quiet move), and the single
// step beyond the fill's edge lands on whatever stopped it, included only
// if that is an enemy piece (a capture). The origin square, present in
// every fill, is removed once at the end.
func slide(origin, enemy, unoccupied squareset.Set, fills [4]func(squareset.Set, squareset.Set) squareset.Set, steps [4]func(squareset.Set) squareset.Set) squareset.Set {
	var reach squareset.Set
	for i := range 4 {
		filled := fills[i](origin, unoccupied)
		reach |= filled | (steps[i](filled) & enemy)
	}
	return reach ^ origin
}

var diagonalFills = [4]func(squareset.Set, squareset.Set) squareset.Set{
	squareset.FillNorthEast, squareset.FillNorthWest,
	squareset.FillSouthEast, squareset.FillSouthWest,
}
var diagonalSteps = [4]func(squareset.Set) squareset.Set{
	squareset.NorthEast, squareset.NorthWest,
	squareset.SouthEast, squareset.SouthWest,
}
var orthogonalFills = [4]func(squareset.Set, squareset.Set) squareset.Set{
	squareset.FillNorth, squareset.FillSouth,
	squareset.FillEast, squareset.FillWest,
}
var orthogonalSteps = [4]func(squareset.Set) squareset.Set{
	squareset.North, squareset.South,
	squareset.East, squareset.West,
}

// Bishop returns the squares a bishop on origin can reach given the board's
// occupancy, computed from the diagonal directional fills.
func Bishop(origin, enemy, unoccupied squareset.Set) squareset.Set {
	return slide(origin, enemy, unoccupied, diagonalFills, diagonalSteps)
}

// Rook returns the squares a rook on origin can reach given the board's
// occupancy, computed from the orthogonal directional fills.
func Rook(origin, enemy, unoccupied squareset.Set) squareset.Set {
	return slide(origin, enemy, unoccupied, orthogonalFills, orthogonalSteps)
}

// Queen returns the union of Bishop and Rook reach from origin.
func Queen(origin, enemy, unoccupied squareset.Set) squareset.Set {
	return Bishop(origin, enemy, unoccupied) | Rook(origin, enemy, unoccupied)
}

// PawnQuiet returns the forward push targets for a pawn on origin: a
// single step onto an empty square, and (only from the pawn's home rank,
// with both squares empty) a double step.
func PawnQuiet(origin squareset.Set, color Color, unoccupied squareset.Set) squareset.Set {
	var single, homeRank squareset.Set
	if color == White {
		single = squareset.North(origin) & unoccupied
		homeRank = squareset.Rank[1]
	} else {
		single = squareset.South(origin) & unoccupied
		homeRank = squareset.Rank[6]
	}

	if single == 0 || origin&homeRank == 0 {
		return single
	}
	var double squareset.Set
	if color == White {
		double = squareset.North(single) & unoccupied
	} else {
		double = squareset.South(single) & unoccupied
	}
	return single | double
}

// PawnCaptures returns the diagonal capture targets for a pawn on origin.
// enemy must include the en-passant target square, if any, per §4.B.
func PawnCaptures(origin squareset.Set, color Color, enemy squareset.Set) squareset.Set {
	return pawnTable[colorIndex(color)][squareset.BitScan(origin)] & enemy
}
