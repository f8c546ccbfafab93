package engine

import "github.com/lgbarn/dreamchess-go/internal/chess"

// LegalMoves returns every valid move for the side to move. A pawn reaching
// the far rank yields one move per promotion kind.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	forEachCandidate(board, func(m chess.Move) bool {
		if MoveIsValid(board, m) {
			moves = append(moves, m)
		}
		return true
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	found := false
	forEachCandidate(board, func(m chess.Move) bool {
		if MoveIsValid(board, m) {
			found = true
			return false
		}
		return true
	})
	return found
}

// forEachCandidate calls fn with every pseudo-move of the side to move until
// fn returns false. Candidates follow piece geometry only; callers filter
// them with MoveIsValid.
func forEachCandidate(board *chess.Board, fn func(chess.Move) bool) {
	colour := board.Turn()
	squares := board.Squares()

	for i, piece := range squares {
		if piece == chess.None || piece.Color() != colour {
			continue
		}
		from := chess.Square(i)
		for _, to := range candidateTargets(board, from, piece) {
			if !emitMoves(from, to, piece, fn) {
				return
			}
		}
	}
}

// emitMoves passes the move from->to to fn, expanded into the four
// promotion choices when a pawn reaches the far rank.
func emitMoves(from, to chess.Square, piece chess.Piece, fn func(chess.Move) bool) bool {
	m := chess.NewMoveWithPromotion(from, to, piece, chess.None)
	if !m.IsPromotion() {
		return fn(m)
	}
	for _, kind := range chess.PromotionKinds {
		m.Promotion = chess.MakePiece(piece.Color(), kind)
		if !fn(m) {
			return false
		}
	}
	return true
}

// candidateTargets generates the destination squares a piece could reach by
// its movement pattern, ignoring check.
func candidateTargets(board *chess.Board, from chess.Square, piece chess.Piece) []chess.Square {
	var targets []chess.Square
	add := func(o offset, n int) bool {
		to := step(from, o, n)
		if to == chess.NoSquare {
			return false
		}
		targets = append(targets, to)
		return board.IsEmpty(to)
	}

	switch piece.Type() {
	case chess.Pawn:
		dir := piece.Color().PawnDirection()
		add(offset{0, dir}, 1)
		add(offset{0, dir}, 2)
		add(offset{-1, dir}, 1)
		add(offset{1, dir}, 1)

	case chess.Knight:
		for _, o := range knightOffsets {
			add(o, 1)
		}

	case chess.King:
		for _, o := range kingOffsets {
			add(o, 1)
		}
		add(offset{2, 0}, 1)
		add(offset{-2, 0}, 1)

	case chess.Bishop:
		slide(diagonalOffsets, add)

	case chess.Rook:
		slide(straightOffsets, add)

	case chess.Queen:
		slide(diagonalOffsets, add)
		slide(straightOffsets, add)
	}

	return targets
}

// slide adds squares along each direction until add reports a blocked square.
func slide(dirs []offset, add func(offset, int) bool) {
	for _, dir := range dirs {
		for n := 1; add(dir, n); n++ {
		}
	}
}
