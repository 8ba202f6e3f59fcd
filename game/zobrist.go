// zobrist.go accelerates the repetition bookkeeping of §4.E/§8 with a
// Zobrist hash, computed in full for each Board, used as a map key,
// falling back to Board.Equal to resolve any hash-bucket collision before
// counting a match. Grounded on the teacher's zobrist.go, generalized to
// drop the en-passant and active-color key components -- Board carries no
// active color, and §4.E's repetition-equality relation is defined purely
// over piece sets, color sets, and castling rights.
package game

import (
	"math/rand/v2"
	"sync"

	"github.com/treepeck/chessgo/board"
	"github.com/treepeck/chessgo/squareset"
)

var (
	pieceKeys    [12][64]uint64
	castlingKeys [16]uint64

	zobristOnce sync.Once
)

// initZobristKeys seeds the hashing keys from the process's default random
// source. Keys differ from run to run -- a deliberate, harmless
// non-determinism, since every comparison this package makes is within a
// single run's own table (see the teacher's identical choice in
// zobrist.go).
func initZobristKeys() {
	zobristOnce.Do(func() {
		for i := range pieceKeys {
			for sq := range 64 {
				pieceKeys[i][sq] = rand.Uint64()
			}
		}
		for i := range castlingKeys {
			castlingKeys[i] = rand.Uint64()
		}
	})
}

func pieceKeyIndex(k board.Kind, c board.Color) int {
	idx := int(k) * 2
	if c == board.Black {
		idx++
	}
	return idx
}

// zobristHash folds b's piece placement and castling rights into a single
// 64-bit key.
func zobristHash(b board.Board) uint64 {
	var key uint64
	for k := board.Pawn; k <= board.King; k++ {
		for _, c := range [2]board.Color{board.White, board.Black} {
			set := b.Pieces(k) & b.Colors(c)
			for set != 0 {
				sq := squareset.PopLSB(&set)
				key ^= pieceKeys[pieceKeyIndex(k, c)][sq]
			}
		}
	}
	key ^= castlingKeys[b.Castling()]
	return key
}
