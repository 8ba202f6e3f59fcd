// Package game implements the Game state machine of §4.E: board/move
// history, side to move, the half-move and full-move counters, the
// terminal-status bitset, the generic play loop, and material evaluation
// with the signed-infinity checkmate sentinel. Grounded on game.go,
// game/game.go, repetition.go, and game/repetition.go, generalized from
// the teacher's [15]uint64 Position and map[string]int repetition keys to
// board.Board and the Zobrist-accelerated equality check in zobrist.go.
package game

import (
	"fmt"
	"math"

	"github.com/treepeck/chessgo/board"
	"github.com/treepeck/chessgo/fen"
	"github.com/treepeck/chessgo/notation"
	"github.com/treepeck/chessgo/squareset"
)

func init() {
	initZobristKeys()
}

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Infinity is the signed-infinity sentinel Evaluate returns for a
// checkmated position, per §4.E.
const Infinity = math.MaxInt

// Status is a bitset over the terminal conditions of §4.E. Zero means the
// game may continue.
type Status uint8

const (
	Checkmate Status = 1 << iota
	Stalemate
	Threefold
	FiftyMove
)

// Has reports whether every bit in mask is set in s.
func (s Status) Has(mask Status) bool { return s&mask == mask }

// Game is a single chess game: the current Board, the history of Boards
// and moves that produced it, the side to move, the half-move clock, the
// full-move counter, and the current terminal-status bitset.
type Game struct {
	Current  board.Board
	ToMove   board.Color
	Halfmove int
	Fullmove int
	Status   Status

	boardHistory []board.Board
	moveHistory  []board.Move
	repetitions  map[uint64][]board.Board
}

// NewGame returns a Game initialized to the standard starting position.
func NewGame() *Game {
	g, err := FromFEN(StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant under this package's own
		// control; a parse failure here means the constant itself is
		// broken, not that the caller supplied bad input.
		panic(fmt.Sprintf("game: starting FEN is malformed: %v", err))
	}
	return g
}

// FromFEN returns a Game initialized from fenStr, or an error if fenStr
// is malformed.
func FromFEN(fenStr string) (*Game, error) {
	b, active, halfmove, fullmove, err := fen.Parse(fenStr)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Current:      b,
		ToMove:       active,
		Halfmove:     halfmove,
		Fullmove:     fullmove,
		boardHistory: make([]board.Board, 0, 64),
		moveHistory:  make([]board.Move, 0, 64),
		repetitions:  make(map[uint64][]board.Board, 64),
	}
	g.recordBoard(b)
	g.recomputeStatus()
	return g, nil
}

func (g *Game) recordBoard(b board.Board) {
	h := zobristHash(b)
	g.repetitions[h] = append(g.repetitions[h], b)
}

// repetitionCount returns the number of Boards in g's history (including
// the current one) equal to b under board.Board.Equal, per §4.E's
// repetition relation. The Zobrist hash narrows the search to a single
// bucket; ties within a bucket are resolved by the exact comparison, so a
// hash collision can never inflate the count.
func (g *Game) repetitionCount(b board.Board) int {
	count := 0
	for _, h := range g.repetitions[zobristHash(b)] {
		if h.Equal(b) {
			count++
		}
	}
	return count
}

// LegalMoves returns the legal moves available to the side to move.
func (g *Game) LegalMoves() []board.LegalMove {
	return g.Current.LegalMoves(g.ToMove)
}

// Push performs the §4.E post-move-update: it records the prior Board and
// move, installs next as current, updates the half-move and full-move
// counters, swaps the side to move, and recomputes Status for the new
// side to move. The caller is responsible for ensuring (mv, next) is one
// of the pairs LegalMoves returned.
func (g *Game) Push(mv board.Move, next board.Board) {
	g.boardHistory = append(g.boardHistory, g.Current)
	g.moveHistory = append(g.moveHistory, mv)
	mover := g.ToMove
	g.Current = next

	if mv.Piece() == board.Pawn || mv.Kind() != board.Quiet {
		g.Halfmove = 0
	} else {
		g.Halfmove++
	}

	if mover == board.Black {
		g.Fullmove++
	}

	g.ToMove = mover.Opponent()
	g.recordBoard(next)
	g.recomputeStatus()
}

func (g *Game) recomputeStatus() {
	var status Status
	inCheck := g.Current.IsCheck(g.ToMove)
	switch {
	case g.Current.IsCheckmateKnown(g.ToMove, inCheck):
		status |= Checkmate
	case g.Current.IsStalemateKnown(g.ToMove, inCheck):
		status |= Stalemate
	}
	if g.Halfmove >= 100 {
		status |= FiftyMove
	}
	if g.repetitionCount(g.Current) >= 3 {
		status |= Threefold
	}
	g.Status = status
}

// BoardHistory returns every Board the game has passed through, in play
// order, not including the current one.
func (g *Game) BoardHistory() []board.Board { return g.boardHistory }

// MoveHistory returns every move played so far, in play order.
func (g *Game) MoveHistory() []board.Move { return g.moveHistory }

// Playable reports whether the game accepts further moves: Status is
// zero.
func (g *Game) Playable() bool { return g.Status == 0 }

// Chooser selects one of the supplied legal moves to play. Play calls a
// separate Chooser for each color.
type Chooser func(legalMoves []board.LegalMove) board.LegalMove

// Play runs the §4.E play loop: while the game is ongoing, it obtains the
// legal moves for the side to move, hands them to that color's Chooser,
// and pushes the result, until Status becomes non-zero.
func (g *Game) Play(choosers [2]Chooser) Status {
	for g.Playable() {
		chooser := choosers[chooserIndex(g.ToMove)]
		choice := chooser(g.LegalMoves())
		g.Push(choice.Move, choice.Board)
	}
	return g.Status
}

func chooserIndex(c board.Color) int {
	if c == board.White {
		return 0
	}
	return 1
}

func materialSum(b board.Board, c board.Color) int {
	sum := 0
	for k := board.Pawn; k <= board.King; k++ {
		sum += board.Material[k] * squareset.CountBits(b.Pieces(k)&b.Colors(c))
	}
	return sum
}

// Evaluate implements the §4.E material-evaluation contract: the signed
// difference white_score - black_score, except that an exact checkmate
// status (no other bit set) returns the signed-infinity sentinel for the
// mated side, and any other non-zero status returns zero.
func (g *Game) Evaluate() int {
	if g.Status == Checkmate {
		if g.ToMove == board.White {
			return Infinity
		}
		return -Infinity
	}
	if g.Status != 0 {
		return 0
	}
	return materialSum(g.Current, board.White) - materialSum(g.Current, board.Black)
}

// ParseMove resolves the short-algebraic text move (per §4.D/§4.E) against
// the current legal-moves list and returns the matching (Move, Board)
// pair.
func (g *Game) ParseMove(text string) (board.LegalMove, error) {
	legalMoves := g.LegalMoves()
	mv, err := notation.ParseSAN(text, g.ToMove, legalMoves)
	if err != nil {
		return board.LegalMove{}, err
	}
	for _, lm := range legalMoves {
		if lm.Move == mv {
			return lm, nil
		}
	}
	// Unreachable: ParseSAN only returns moves drawn from legalMoves.
	return board.LegalMove{}, notation.ErrNoSuchMove
}
