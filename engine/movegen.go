package engine

// GenerateLegalMoves returns every pseudo-legal move that does not leave
// the mover's own king attacked. It is correct by construction — make the
// move, test attack, unmake — which avoids a separate pin-detection pass.
func (b *Board) GenerateLegalMoves(moves []Move) int {
	var pseudo [MaxMoves]Move
	n := b.GeneratePseudoMoves(pseudo[:])
	legal := 0
	var undo UndoInfo
	for i := 0; i < n; i++ {
		b.MakeMove(pseudo[i], &undo)
		if !b.IsAttacked(b.KingSquare[b.Side^1], b.Side) {
			moves[legal] = pseudo[i]
			legal++
		}
		b.UnmakeMove(pseudo[i], undo)
	}
	return legal
}

// IsLegal reports whether m is legal by making and unmaking it.
func (b *Board) IsLegal(m Move) bool {
	var undo UndoInfo
	b.MakeMove(m, &undo)
	legal := !b.IsAttacked(b.KingSquare[b.Side^1], b.Side)
	b.UnmakeMove(m, undo)
	return legal
}

// GeneratePseudoMoves returns every pseudo-legal move (may leave the
// mover's king attacked); it is the input to GenerateLegalMoves and to
// search-side legality filtering.
func (b *Board) GeneratePseudoMoves(moves []Move) int {
	n := 0
	n = b.genPawnMoves(moves, n)
	n = b.genKnightMoves(moves, n)
	n = b.genSliderMoves(moves, n, Bishop)
	n = b.genSliderMoves(moves, n, Rook)
	n = b.genSliderMoves(moves, n, Queen)
	n = b.genKingMoves(moves, n)
	return n
}

// GenerateCaptures returns capture-class moves for quiescence: real
// captures, en-passant captures, and queen promotions (including
// promotion by a quiet push, which is a material event worth searching).
// It stays pseudo-legal; callers filter illegality themselves.
func (b *Board) GenerateCaptures(moves []Move) int {
	n := 0
	n = b.genPawnCaptures(moves, n)
	n = b.genKnightCaptures(moves, n)
	n = b.genSliderCaptures(moves, n, Bishop)
	n = b.genSliderCaptures(moves, n, Rook)
	n = b.genSliderCaptures(moves, n, Queen)
	n = b.genKingCaptures(moves, n)
	return n
}

func (b *Board) genPawnMoves(moves []Move, c int) int {
	sign := PieceSign(b.Side)
	pawn := Piece(sign) * Pawn
	dir := 8
	startRank, promoRank := 1, 7
	if b.Side == Black {
		dir = -8
		startRank, promoRank = 6, 0
	}

	for sq := 0; sq < 64; sq++ {
		if b.Squares[sq] != pawn {
			continue
		}
		f, r := SquareFile(sq), SquareRank(sq)

		to := sq + dir
		if to >= 0 && to < 64 && b.Squares[to] == Empty {
			if SquareRank(to) == promoRank {
				moves[c] = Move{From: uint8(sq), To: uint8(to), Promotion: Piece(sign) * Queen}
				c++
				moves[c] = Move{From: uint8(sq), To: uint8(to), Promotion: Piece(sign) * Rook}
				c++
				moves[c] = Move{From: uint8(sq), To: uint8(to), Promotion: Piece(sign) * Bishop}
				c++
				moves[c] = Move{From: uint8(sq), To: uint8(to), Promotion: Piece(sign) * Knight}
				c++
			} else {
				moves[c] = Move{From: uint8(sq), To: uint8(to)}
				c++
				if r == startRank {
					to2 := sq + 2*dir
					if b.Squares[to2] == Empty {
						moves[c] = Move{From: uint8(sq), To: uint8(to2), Flags: FlagDouble}
						c++
					}
				}
			}
		}

		capDirs := [2]int{dir - 1, dir + 1}
		capFiles := [2]int{f - 1, f + 1}
		for i := 0; i < 2; i++ {
			if capFiles[i] < 0 || capFiles[i] > 7 {
				continue
			}
			to := sq + capDirs[i]
			if to < 0 || to >= 64 {
				continue
			}
			if b.Squares[to] != Empty && PieceSide(b.Squares[to]) != b.Side {
				if SquareRank(to) == promoRank {
					moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: b.Squares[to], Promotion: Piece(sign) * Queen}
					c++
					moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: b.Squares[to], Promotion: Piece(sign) * Rook}
					c++
					moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: b.Squares[to], Promotion: Piece(sign) * Bishop}
					c++
					moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: b.Squares[to], Promotion: Piece(sign) * Knight}
					c++
				} else {
					moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: b.Squares[to]}
					c++
				}
			}
			if to == b.EPSquare {
				moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: -Piece(sign) * Pawn, Flags: FlagEP}
				c++
			}
		}
	}
	return c
}

func (b *Board) genPawnCaptures(moves []Move, c int) int {
	sign := PieceSign(b.Side)
	pawn := Piece(sign) * Pawn
	dir := 8
	promoRank := 7
	if b.Side == Black {
		dir = -8
		promoRank = 0
	}

	for sq := 0; sq < 64; sq++ {
		if b.Squares[sq] != pawn {
			continue
		}
		f := SquareFile(sq)

		fwd := sq + dir
		if fwd >= 0 && fwd < 64 && b.Squares[fwd] == Empty && SquareRank(fwd) == promoRank {
			moves[c] = Move{From: uint8(sq), To: uint8(fwd), Promotion: Piece(sign) * Queen}
			c++
		}

		capDirs := [2]int{dir - 1, dir + 1}
		capFiles := [2]int{f - 1, f + 1}
		for i := 0; i < 2; i++ {
			if capFiles[i] < 0 || capFiles[i] > 7 {
				continue
			}
			to := sq + capDirs[i]
			if to < 0 || to >= 64 {
				continue
			}
			if b.Squares[to] != Empty && PieceSide(b.Squares[to]) != b.Side {
				if SquareRank(to) == promoRank {
					moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: b.Squares[to], Promotion: Piece(sign) * Queen}
					c++
				} else {
					moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: b.Squares[to]}
					c++
				}
			}
			if to == b.EPSquare {
				moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: -Piece(sign) * Pawn, Flags: FlagEP}
				c++
			}
		}
	}
	return c
}

func (b *Board) genKnightMoves(moves []Move, c int) int {
	knight := Piece(PieceSign(b.Side)) * Knight
	for sq := 0; sq < 64; sq++ {
		if b.Squares[sq] != knight {
			continue
		}
		for _, d := range KnightDirs {
			to := sq + d
			if to < 0 || to >= 64 || abs(SquareFile(to)-SquareFile(sq)) > 2 {
				continue
			}
			target := b.Squares[to]
			if target == Empty {
				moves[c] = Move{From: uint8(sq), To: uint8(to)}
				c++
			} else if PieceSide(target) != b.Side {
				moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: target}
				c++
			}
		}
	}
	return c
}

func (b *Board) genKnightCaptures(moves []Move, c int) int {
	knight := Piece(PieceSign(b.Side)) * Knight
	for sq := 0; sq < 64; sq++ {
		if b.Squares[sq] != knight {
			continue
		}
		for _, d := range KnightDirs {
			to := sq + d
			if to < 0 || to >= 64 || abs(SquareFile(to)-SquareFile(sq)) > 2 {
				continue
			}
			target := b.Squares[to]
			if target != Empty && PieceSide(target) != b.Side {
				moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: target}
				c++
			}
		}
	}
	return c
}

func sliderDirs(pieceType Piece) []int {
	switch pieceType {
	case Bishop:
		return BishopDirs[:]
	case Rook:
		return RookDirs[:]
	default:
		return KingDirs[:]
	}
}

func (b *Board) genSliderMoves(moves []Move, c int, pieceType Piece) int {
	sign := PieceSign(b.Side)
	piece := Piece(sign) * pieceType
	dirs := sliderDirs(pieceType)

	for sq := 0; sq < 64; sq++ {
		if b.Squares[sq] != piece {
			continue
		}
		for _, d := range dirs {
			for to := sq + d; to >= 0 && to < 64; to += d {
				if abs(SquareFile(to)-SquareFile(to-d)) > 1 {
					break
				}
				target := b.Squares[to]
				if target == Empty {
					moves[c] = Move{From: uint8(sq), To: uint8(to)}
					c++
				} else {
					if PieceSide(target) != b.Side {
						moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: target}
						c++
					}
					break
				}
			}
		}
	}
	return c
}

func (b *Board) genSliderCaptures(moves []Move, c int, pieceType Piece) int {
	sign := PieceSign(b.Side)
	piece := Piece(sign) * pieceType
	dirs := sliderDirs(pieceType)

	for sq := 0; sq < 64; sq++ {
		if b.Squares[sq] != piece {
			continue
		}
		for _, d := range dirs {
			for to := sq + d; to >= 0 && to < 64; to += d {
				if abs(SquareFile(to)-SquareFile(to-d)) > 1 {
					break
				}
				target := b.Squares[to]
				if target == Empty {
					continue
				}
				if PieceSide(target) != b.Side {
					moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: target}
					c++
				}
				break
			}
		}
	}
	return c
}

func (b *Board) genKingMoves(moves []Move, c int) int {
	sq := b.KingSquare[b.Side]

	for _, d := range KingDirs {
		to := sq + d
		if to < 0 || to >= 64 || abs(SquareFile(to)-SquareFile(sq)) > 1 {
			continue
		}
		target := b.Squares[to]
		if target == Empty {
			moves[c] = Move{From: uint8(sq), To: uint8(to)}
			c++
		} else if PieceSide(target) != b.Side {
			moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: target}
			c++
		}
	}

	if !b.IsAttacked(sq, b.Side^1) {
		if b.Side == White {
			if b.Castling&1 != 0 && b.Squares[5] == Empty && b.Squares[6] == Empty &&
				!b.IsAttacked(5, Black) && !b.IsAttacked(6, Black) {
				moves[c] = Move{From: 4, To: 6, Flags: FlagCastle}
				c++
			}
			if b.Castling&2 != 0 && b.Squares[3] == Empty && b.Squares[2] == Empty && b.Squares[1] == Empty &&
				!b.IsAttacked(3, Black) && !b.IsAttacked(2, Black) {
				moves[c] = Move{From: 4, To: 2, Flags: FlagCastle}
				c++
			}
		} else {
			if b.Castling&4 != 0 && b.Squares[61] == Empty && b.Squares[62] == Empty &&
				!b.IsAttacked(61, White) && !b.IsAttacked(62, White) {
				moves[c] = Move{From: 60, To: 62, Flags: FlagCastle}
				c++
			}
			if b.Castling&8 != 0 && b.Squares[59] == Empty && b.Squares[58] == Empty && b.Squares[57] == Empty &&
				!b.IsAttacked(59, White) && !b.IsAttacked(58, White) {
				moves[c] = Move{From: 60, To: 58, Flags: FlagCastle}
				c++
			}
		}
	}
	return c
}

func (b *Board) genKingCaptures(moves []Move, c int) int {
	sq := b.KingSquare[b.Side]
	for _, d := range KingDirs {
		to := sq + d
		if to < 0 || to >= 64 || abs(SquareFile(to)-SquareFile(sq)) > 1 {
			continue
		}
		target := b.Squares[to]
		if target != Empty && PieceSide(target) != b.Side {
			moves[c] = Move{From: uint8(sq), To: uint8(to), Captured: target}
			c++
		}
	}
	return c
}

// MoveFromUCI parses coordinate notation against the current board state
// to recover captured/flag information the wire format doesn't carry.
func (b *Board) MoveFromUCI(s string) Move {
	if len(s) < 4 {
		return Move{}
	}
	from := MakeSquare(int(s[0]-'a'), int(s[1]-'1'))
	to := MakeSquare(int(s[2]-'a'), int(s[3]-'1'))
	cap := b.Squares[to]
	var promo Piece
	var flags uint8

	piece := b.Squares[from]
	pt := PieceType(piece)
	sign := 1
	if piece < 0 {
		sign = -1
	}

	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Piece(sign) * Queen
		case 'r':
			promo = Piece(sign) * Rook
		case 'b':
			promo = Piece(sign) * Bishop
		case 'n':
			promo = Piece(sign) * Knight
		}
	}

	if pt == Pawn && SquareFile(from) != SquareFile(to) && cap == Empty {
		flags = FlagEP
		cap = -Piece(sign) * Pawn
	}

	if pt == Pawn && abs(SquareRank(to)-SquareRank(from)) == 2 {
		flags = FlagDouble
	}

	if pt == King && abs(SquareFile(to)-SquareFile(from)) == 2 {
		flags = FlagCastle
	}

	return Move{From: uint8(from), To: uint8(to), Captured: cap, Promotion: promo, Flags: flags}
}

// IsCheckmate reports mate: no legal moves and the side to move is in check.
func (b *Board) IsCheckmate() bool {
	var moves [MaxMoves]Move
	return b.GenerateLegalMoves(moves[:]) == 0 && b.InCheck()
}

// IsStalemate reports stalemate: no legal moves and not in check.
func (b *Board) IsStalemate() bool {
	var moves [MaxMoves]Move
	return b.GenerateLegalMoves(moves[:]) == 0 && !b.InCheck()
}
