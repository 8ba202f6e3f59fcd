// board.go implements the Board (position) type of §4.C: piece placement,
// castling rights, and the en-passant target, together with the two-phase
// pseudo-legal-then-legal move generator and the make-move step. Grounded
// on movegen.go's GenLegalMoves/genKingMoves/genPawnMoves/genNormalMoves
// and position.go's MakeMove, generalized from the 15-bitboard-array plus
// magic-lookup design to the fill-based attacks package and an explicit
// occupied/unoccupied pair kept in sync on every mutation.
package board

import (
	"github.com/treepeck/chessgo/attacks"
	"github.com/treepeck/chessgo/squareset"
)

// Board is an immutable-to-callers chess position: a bitboard-based set of
// piece placements, the derived occupancy, the en-passant target (at most
// one square), and the surviving castling rights. Board has no pointers or
// slices, so an ordinary assignment is already the O(1) value-copy the
// design notes ask for; Clone exists only to name that copy at call sites.
type Board struct {
	pieces     [kindCount]squareset.Set
	colors     [2]squareset.Set
	occupied   squareset.Set
	unoccupied squareset.Set
	enPassant  squareset.Set
	castling   CastlingRights
}

func init() {
	attacks.InitTables()
}

func colorIdx(c Color) int {
	if c {
		return 1
	}
	return 0
}

// NewBoard builds a Board from its raw pieces, their colors, the surviving
// castling rights and the en-passant target (Empty if none). occupied and
// unoccupied are derived, never passed in, per the §3 invariant that they
// are kept in sync with the piece/color sets at every mutation.
func NewBoard(pieces [kindCount]squareset.Set, colors [2]squareset.Set,
	castling CastlingRights, enPassant squareset.Set) Board {
	occ := colors[0] | colors[1]
	return Board{
		pieces:     pieces,
		colors:     colors,
		occupied:   occ,
		unoccupied: squareset.Universe ^ occ,
		enPassant:  enPassant,
		castling:   castling,
	}
}

// Clone returns an independent copy of b. Board has no reference fields, so
// this is a plain struct copy; the method exists so callers that simulate a
// move can name the step the design notes (§9) call for.
func (b Board) Clone() Board { return b }

// Pieces returns the square-set of every piece of kind k, of either color.
func (b Board) Pieces(k Kind) squareset.Set { return b.pieces[k] }

// Colors returns the square-set of every piece belonging to c.
func (b Board) Colors(c Color) squareset.Set { return b.colors[colorIdx(c)] }

// Occupied returns the union of both color sets.
func (b Board) Occupied() squareset.Set { return b.occupied }

// Unoccupied returns the complement of Occupied within the universe.
func (b Board) Unoccupied() squareset.Set { return b.unoccupied }

// EnPassant returns the current en-passant target square-set (at most one
// bit), or Empty if a capture en passant is not available.
func (b Board) EnPassant() squareset.Set { return b.enPassant }

// Castling returns the surviving castling rights.
func (b Board) Castling() CastlingRights { return b.castling }

// PieceAt reports the kind and color of the piece standing on sq, and false
// if sq is empty.
func (b Board) PieceAt(sq int) (Kind, Color, bool) {
	mask := squareset.Square[sq]
	for k := Pawn; k <= King; k++ {
		if b.pieces[k]&mask != 0 {
			return k, Color(b.colors[1]&mask != 0), true
		}
	}
	return 0, White, false
}

// Equal implements the repetition-comparison relation of §4.E/§8: two
// Boards are equal iff every piece-kind set, every color set, and the
// castling rights match. The en-passant target is deliberately excluded --
// see §9 note 4 for why threefold repetition ignores it.
func (b Board) Equal(o Board) bool {
	return b.pieces == o.pieces && b.colors == o.colors && b.castling == o.castling
}

// King returns the square the color's king stands on, and false if that
// color has no king on the board (only possible for a Board constructed
// directly from untrusted external notation; see §3).
func (b Board) King(color Color) (int, bool) {
	kings := b.pieces[King] & b.colors[colorIdx(color)]
	if kings == 0 {
		return 0, false
	}
	return squareset.BitScan(kings), true
}

// clearSquare removes whatever piece, of whatever color, stands on sq from
// every set it could belong to. Safe to call on an empty square.
func (b *Board) clearSquare(sq int) {
	mask := squareset.Square[sq]
	for k := Pawn; k <= King; k++ {
		b.pieces[k] &^= mask
	}
	b.colors[0] &^= mask
	b.colors[1] &^= mask
}

// setSquare places a piece of kind k and color c on sq, without first
// clearing it; callers that might be overwriting an occupied square must
// clearSquare first.
func (b *Board) setSquare(k Kind, c Color, sq int) {
	mask := squareset.Square[sq]
	b.pieces[k] |= mask
	b.colors[colorIdx(c)] |= mask
}

func (b *Board) syncOccupancy() {
	b.occupied = b.colors[0] | b.colors[1]
	b.unoccupied = squareset.Universe ^ b.occupied
}

// pawnForward returns the rank offset a pawn of color c advances by: +8 for
// white (towards rank 8), -8 for black (towards rank 1).
func pawnForward(c Color) int {
	if c == White {
		return 8
	}
	return -8
}

// castleSquares returns the geometry of one castling side for color: the
// king's origin and destination squares, the rook's origin and
// destination, the squares that must be entirely empty for the move to be
// possible (the squares strictly between king and rook), and the ordered
// squares the king occupies during the move (inclusive of both ends) that
// must all be free of attack.
func castleSquares(color Color, kingside bool) (kingFrom, kingTo, rookFrom, rookTo int,
	emptyPath squareset.Set, transit [3]int) {
	rank := 0
	if color == Black {
		rank = 7
	}
	base := rank * 8
	kingFrom = base + 4
	if kingside {
		kingTo = base + 6
		rookFrom = base + 7
		rookTo = base + 5
		emptyPath = squareset.Square[base+5] | squareset.Square[base+6]
		transit = [3]int{base + 4, base + 5, base + 6}
	} else {
		kingTo = base + 2
		rookFrom = base + 0
		rookTo = base + 3
		emptyPath = squareset.Square[base+1] | squareset.Square[base+2] | squareset.Square[base+3]
		transit = [3]int{base + 4, base + 3, base + 2}
	}
	return
}

// apply mutates b in place by performing mv, following the five steps of
// §4.C make-move exactly: place the moving piece on the destination
// (overwriting any capture), vacate the origin, replace a promoted pawn,
// resolve en passant, and update castling rights. Castling itself is
// performed as the king's move via this same sequence, plus a second,
// separate relocation of the rook.
func (b *Board) apply(mv Move) {
	fromSq, toSq := mv.FromSquare(), mv.ToSquare()
	color := mv.MovingColor()
	piece := mv.Piece()

	isEnPassantCapture := piece == Pawn && mv.Kind() == Attack &&
		b.enPassant != 0 && squareset.Square[toSq] == b.enPassant

	// 1. Place the moving piece on the destination, overwriting any capture.
	b.clearSquare(toSq)
	b.setSquare(piece, color, toSq)
	// 2. Remove the piece from the origin.
	b.clearSquare(fromSq)

	// 3. Promotion replaces the pawn just placed in step 1.
	if promo := mv.Promotion(); promo != NoKind {
		b.pieces[Pawn] &^= squareset.Square[toSq]
		b.pieces[promo] |= squareset.Square[toSq]
	}

	// Castling relocates the rook as a second atomic move.
	if mv.Kind() == Castle {
		_, _, rookFrom, rookTo, _, _ := castleSquares(color, toSq%8 == 6)
		b.clearSquare(rookFrom)
		b.setSquare(Rook, color, rookTo)
	}

	if isEnPassantCapture {
		b.clearSquare(toSq - pawnForward(color))
	}

	// 4. En-passant target for the next move.
	switch {
	case isEnPassantCapture:
		b.enPassant = squareset.Empty
	case piece == Pawn && abs(toSq-fromSq) == 16:
		b.enPassant = squareset.Square[(toSq+fromSq)/2]
	default:
		b.enPassant = squareset.Empty
	}

	// 5. Castling-rights update.
	switch piece {
	case King:
		b.castling = b.castling.Clear(Kingside(color) | Queenside(color))
	case Rook:
		switch fromSq % 8 {
		case 0:
			b.castling = b.castling.Clear(Queenside(color))
		case 7:
			b.castling = b.castling.Clear(Kingside(color))
		}
	}

	b.syncOccupancy()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Apply returns the Board that results from performing mv on b, leaving b
// itself untouched. This is the make-move step of §4.C, exposed as a pure
// function over the published, immutable Board value.
func (b Board) Apply(mv Move) Board {
	next := b
	next.apply(mv)
	return next
}

// pawnTargets appends the pawn moves arising from quiet and capture target
// sets to l, expanding any move landing on the back ranks into the four
// promotion kinds in §3's order: knight, bishop, rook, queen.
func pawnTargets(l *MoveList, color Color, fromSq int, quiet, captures squareset.Set) {
	for quiet != 0 {
		toSq := squareset.PopLSB(&quiet)
		pushPawnMove(l, color, fromSq, toSq, Quiet)
	}
	for captures != 0 {
		toSq := squareset.PopLSB(&captures)
		pushPawnMove(l, color, fromSq, toSq, Attack)
	}
}

func pushPawnMove(l *MoveList, color Color, fromSq, toSq int, kind MoveKind) {
	if squareset.Square[toSq]&squareset.EndRanks != 0 {
		l.Push(NewPromotionMove(color, fromSq, toSq, kind, Knight))
		l.Push(NewPromotionMove(color, fromSq, toSq, kind, Bishop))
		l.Push(NewPromotionMove(color, fromSq, toSq, kind, Rook))
		l.Push(NewPromotionMove(color, fromSq, toSq, kind, Queen))
		return
	}
	l.Push(NewMove(Pawn, color, fromSq, toSq, kind))
}

// pushTargets appends one Move per bit of targets, classified Attack if the
// bit lies in enemy, else Quiet, in ascending square order.
func pushTargets(l *MoveList, kind Kind, color Color, fromSq int, targets, enemy squareset.Set) {
	for targets != 0 {
		toSq := squareset.PopLSB(&targets)
		moveKind := Quiet
		if squareset.Square[toSq]&enemy != 0 {
			moveKind = Attack
		}
		l.Push(NewMove(kind, color, fromSq, toSq, moveKind))
	}
}

// PseudoLegalMoves enumerates every pseudo-legal move for color: every
// move that respects piece geometry, blocking, and capture rules, without
// regard to whether it leaves color's own king attacked. Castling is never
// included here; it is added only by LegalMoves. Bits are popped
// low-index to high-index, piece kind in pawn -> knight -> bishop -> rook
// -> queen -> king order, per §4.C's determinism requirement.
func (b Board) PseudoLegalMoves(color Color) MoveList {
	var l MoveList
	own := b.colors[colorIdx(color)]
	opp := b.colors[colorIdx(color.Opponent())]
	unocc := b.unoccupied
	pawnEnemy := opp | b.enPassant

	pawns := b.pieces[Pawn] & own
	for pawns != 0 {
		sq := squareset.PopLSB(&pawns)
		origin := squareset.Square[sq]
		quiet := attacks.PawnQuiet(origin, color, unocc)
		captures := attacks.PawnCaptures(origin, color, pawnEnemy)
		pawnTargets(&l, color, sq, quiet, captures)
	}

	knights := b.pieces[Knight] & own
	for knights != 0 {
		sq := squareset.PopLSB(&knights)
		targets := attacks.Knight(squareset.Square[sq], opp, unocc)
		pushTargets(&l, Knight, color, sq, targets, opp)
	}

	bishops := b.pieces[Bishop] & own
	for bishops != 0 {
		sq := squareset.PopLSB(&bishops)
		targets := attacks.Bishop(squareset.Square[sq], opp, unocc)
		pushTargets(&l, Bishop, color, sq, targets, opp)
	}

	rooks := b.pieces[Rook] & own
	for rooks != 0 {
		sq := squareset.PopLSB(&rooks)
		targets := attacks.Rook(squareset.Square[sq], opp, unocc)
		pushTargets(&l, Rook, color, sq, targets, opp)
	}

	queens := b.pieces[Queen] & own
	for queens != 0 {
		sq := squareset.PopLSB(&queens)
		targets := attacks.Queen(squareset.Square[sq], opp, unocc)
		pushTargets(&l, Queen, color, sq, targets, opp)
	}

	kings := b.pieces[King] & own
	for kings != 0 {
		sq := squareset.PopLSB(&kings)
		targets := attacks.King(squareset.Square[sq], opp, unocc)
		pushTargets(&l, King, color, sq, targets, opp)
	}

	return l
}

// IsCheck reports whether color's king is attacked in b, per §4.C: color is
// in check iff some pseudo-legal move of the opponent is an attack landing
// on color's king square.
func (b Board) IsCheck(color Color) bool {
	kingSq, ok := b.King(color)
	if !ok {
		return false
	}
	opp := b.PseudoLegalMoves(color.Opponent())
	for i := 0; i < opp.Len; i++ {
		mv := opp.Moves[i]
		if mv.Kind() == Attack && mv.ToSquare() == kingSq {
			return true
		}
	}
	return false
}

// canCastle reports whether color may legally castle to the given side,
// per §4.C: the right must survive, the rook must still stand on its
// corner square (see §9 note 3 on why this is required even though rights
// aren't cleared when that rook is captured), the squares strictly
// between king and rook must be empty, and the king must not be attacked
// on its origin, transit, or destination square.
func (b Board) canCastle(color Color, kingside bool) bool {
	right := Queenside(color)
	if kingside {
		right = Kingside(color)
	}
	if !b.castling.Has(right) {
		return false
	}
	kingFrom, _, rookFrom, _, emptyPath, transit := castleSquares(color, kingside)
	if b.pieces[Rook]&b.colors[colorIdx(color)]&squareset.Square[rookFrom] == 0 {
		return false
	}
	if b.occupied&emptyPath != 0 {
		return false
	}
	for _, t := range transit {
		scratch := b
		scratch.clearSquare(kingFrom)
		scratch.setSquare(King, color, t)
		scratch.syncOccupancy()
		if scratch.IsCheck(color) {
			return false
		}
	}
	return true
}

// LegalMove pairs a legal move with the Board that results from playing it,
// the output element §4.C specifies for legal-move generation.
type LegalMove struct {
	Move  Move
	Board Board
}

// LegalMoves generates every legal move for color: pseudo-legal moves
// filtered by simulated make-move plus a same-side check test, with legal
// castling moves appended, per §4.C.
func (b Board) LegalMoves(color Color) []LegalMove {
	pseudo := b.PseudoLegalMoves(color)
	moves := make([]LegalMove, 0, pseudo.Len+2)

	for i := 0; i < pseudo.Len; i++ {
		mv := pseudo.Moves[i]
		next := b.Apply(mv)
		if !next.IsCheck(color) {
			moves = append(moves, LegalMove{mv, next})
		}
	}

	for _, kingside := range [...]bool{true, false} {
		if !b.canCastle(color, kingside) {
			continue
		}
		kingFrom, kingTo, _, _, _, _ := castleSquares(color, kingside)
		mv := NewMove(King, color, kingFrom, kingTo, Castle)
		next := b.Apply(mv)
		if !next.IsCheck(color) {
			moves = append(moves, LegalMove{mv, next})
		}
	}

	return moves
}

// IsCheckmate reports whether color is checkmated in b: in check with no
// legal moves.
func (b Board) IsCheckmate(color Color) bool {
	return b.IsCheckmateKnown(color, b.IsCheck(color))
}

// IsCheckmateKnown is IsCheckmate for a caller that already computed
// inCheck, avoiding the redundant check test §4.C allows for.
func (b Board) IsCheckmateKnown(color Color, inCheck bool) bool {
	return inCheck && len(b.LegalMoves(color)) == 0
}

// IsStalemate reports whether color is stalemated in b: not in check, but
// with no legal moves.
func (b Board) IsStalemate(color Color) bool {
	return b.IsStalemateKnown(color, b.IsCheck(color))
}

// IsStalemateKnown is IsStalemate for a caller that already computed
// inCheck.
func (b Board) IsStalemateKnown(color Color, inCheck bool) bool {
	return !inCheck && len(b.LegalMoves(color)) == 0
}
