// Package perft implements the performance-test move-tree walk used to
// cross-check the move generator against the standard perft node-count
// corpus, per spec.md §8's call to validate legal-move generation against
// known-correct counts. Grounded on internal/perft.go's recursive
// perft/perftVerbose, generalized from the magic-bitboard Position (with
// its explicit prev/restore dance) to the value-typed board.Board, whose
// O(1) copy makes that restore step unnecessary.
package perft

import "github.com/treepeck/chessgo/board"

// Perft counts the leaf nodes of the legal-move tree rooted at b, with
// color to move, walked to depth plies. Depth 0 is the single root node;
// depth 1 is the number of legal moves; deeper counts recurse.
func Perft(b board.Board, color board.Color, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves(color)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, lm := range moves {
		nodes += Perft(lm.Board, color.Opponent(), depth-1)
	}
	return nodes
}

// Divide returns, for each legal move available to color in b, the perft
// count of the subtree rooted at that move, keyed by the move itself. It is
// the standard perft-debugging tool for locating which root branch
// disagrees with a known count; callers typically render each key with
// notation.UCI before printing.
func Divide(b board.Board, color board.Color, depth int) map[board.Move]int {
	moves := b.LegalMoves(color)
	out := make(map[board.Move]int, len(moves))
	for _, lm := range moves {
		out[lm.Move] = Perft(lm.Board, color.Opponent(), depth-1)
	}
	return out
}
