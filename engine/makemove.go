package engine

// MakeMove applies m in place, filling undo with everything UnmakeMove
// needs to restore the pre-move state exactly. Hash is maintained
// incrementally: every mutation XORs the relevant Zobrist key in and out
// rather than recomputing from scratch.
func (b *Board) MakeMove(m Move, undo *UndoInfo) {
	undo.Castling = b.Castling
	undo.EPSquare = b.EPSquare
	undo.Halfmove = b.Halfmove
	undo.Hash = b.Hash

	from, to := int(m.From), int(m.To)
	piece := b.Squares[from]
	pt := PieceType(piece)
	side := PieceSide(piece)

	b.Hash ^= zobristPiece[pieceIndex(piece)][from]
	b.Squares[from] = Empty

	if m.Captured != Empty {
		capSq := to
		if m.Flags&FlagEP != 0 {
			capSq = MakeSquare(SquareFile(to), SquareRank(from))
			b.Hash ^= zobristPiece[pieceIndex(m.Captured)][capSq]
			b.Squares[capSq] = Empty
		} else {
			b.Hash ^= zobristPiece[pieceIndex(m.Captured)][to]
		}
	}

	placed := piece
	if m.Promotion != Empty {
		placed = m.Promotion
	}
	b.Squares[to] = placed
	b.Hash ^= zobristPiece[pieceIndex(placed)][to]

	if pt == King {
		b.KingSquare[side] = to
	}

	if m.Flags&FlagCastle != 0 {
		rook := Piece(PieceSign(side)) * Rook
		var rookFrom, rookTo int
		if SquareFile(to) == 6 {
			rookFrom = MakeSquare(7, SquareRank(from))
			rookTo = MakeSquare(5, SquareRank(from))
		} else {
			rookFrom = MakeSquare(0, SquareRank(from))
			rookTo = MakeSquare(3, SquareRank(from))
		}
		b.Hash ^= zobristPiece[pieceIndex(rook)][rookFrom]
		b.Hash ^= zobristPiece[pieceIndex(rook)][rookTo]
		b.Squares[rookFrom] = Empty
		b.Squares[rookTo] = rook
	}

	b.Hash ^= zobristCastling[b.Castling]
	if pt == King {
		if side == White {
			b.Castling &^= 3
		} else {
			b.Castling &^= 12
		}
	}
	if from == 0 || to == 0 {
		b.Castling &^= 2
	}
	if from == 7 || to == 7 {
		b.Castling &^= 1
	}
	if from == 56 || to == 56 {
		b.Castling &^= 8
	}
	if from == 63 || to == 63 {
		b.Castling &^= 4
	}
	b.Hash ^= zobristCastling[b.Castling]

	if b.EPSquare >= 0 {
		b.Hash ^= zobristEP[SquareFile(b.EPSquare)]
	}
	b.EPSquare = -1
	if m.Flags&FlagDouble != 0 && pt == Pawn {
		b.EPSquare = (from + to) / 2
		b.Hash ^= zobristEP[SquareFile(b.EPSquare)]
	}

	if pt == Pawn || m.Captured != Empty {
		b.Halfmove = 0
	} else {
		b.Halfmove++
	}

	b.Side ^= 1
	b.Hash ^= zobristSide
	if b.Side == White {
		b.Fullmove++
	}

	if b.historyCount < maxHistory {
		b.history[b.historyCount] = b.Hash
		b.historyCount++
	}
}

// UnmakeMove is the exact inverse of MakeMove given the same m and undo.
func (b *Board) UnmakeMove(m Move, undo UndoInfo) {
	b.Side ^= 1
	from, to := int(m.From), int(m.To)

	var piece Piece
	if m.Promotion != Empty {
		piece = Piece(PieceSign(b.Side)) * Pawn
	} else {
		piece = b.Squares[to]
	}
	pt := PieceType(piece)

	b.Squares[to] = Empty
	b.Squares[from] = piece

	if m.Captured != Empty {
		if m.Flags&FlagEP != 0 {
			capSq := MakeSquare(SquareFile(to), SquareRank(from))
			b.Squares[capSq] = m.Captured
		} else {
			b.Squares[to] = m.Captured
		}
	}

	if m.Flags&FlagCastle != 0 {
		rook := Piece(PieceSign(b.Side)) * Rook
		if SquareFile(to) == 6 {
			b.Squares[MakeSquare(7, SquareRank(from))] = rook
			b.Squares[MakeSquare(5, SquareRank(from))] = Empty
		} else {
			b.Squares[MakeSquare(0, SquareRank(from))] = rook
			b.Squares[MakeSquare(3, SquareRank(from))] = Empty
		}
	}

	if pt == King {
		b.KingSquare[b.Side] = from
	}

	b.Castling = undo.Castling
	b.EPSquare = undo.EPSquare
	b.Halfmove = undo.Halfmove
	b.Hash = undo.Hash
	if b.Side == Black {
		b.Fullmove--
	}

	if b.historyCount > 0 {
		b.historyCount--
	}
}

// MakeNullMove flips the side to move without touching the board or
// history stack, used by null-move pruning.
func (b *Board) MakeNullMove(undo *UndoInfo) {
	undo.EPSquare = b.EPSquare
	undo.Hash = b.Hash
	if b.EPSquare >= 0 {
		b.Hash ^= zobristEP[SquareFile(b.EPSquare)]
	}
	b.EPSquare = -1
	b.Side ^= 1
	b.Hash ^= zobristSide
}

// UnmakeNullMove is the exact inverse of MakeNullMove.
func (b *Board) UnmakeNullMove(undo UndoInfo) {
	b.Side ^= 1
	b.EPSquare = undo.EPSquare
	b.Hash = undo.Hash
}
