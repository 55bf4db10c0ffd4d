package engine

import "testing"

// sq converts an algebraic label to a Coord for test readability.
// Rank 8 of the printed board is Rank 0 internally.
func sq(s string) Coord {
	return Coord{File: int(s[0] - 'a'), Rank: int('8' - s[1])}
}

func emptyGame(toMove Color) *Game {
	return &Game{whiteToMove: toMove == White}
}

func (g *Game) put(s string, p Piece) *Game {
	c := sq(s)
	g.board[c.Rank][c.File] = p
	return g
}

func TestKnightGeometry(t *testing.T) {
	g := emptyGame(White).put("d4", Piece{Type: Knight, Color: White})

	accepted := []string{"e6", "f5", "f3", "e2", "c2", "b3", "b5", "c6"}
	for _, to := range accepted {
		if !pieceRule(&g.board, g.PieceAt(sq("d4")), sq("d4"), sq(to)) {
			t.Errorf("knight d4->%s: want accepted", to)
		}
	}

	rejected := []string{"e5", "f6", "d7", "c4", "h4"}
	for _, to := range rejected {
		if pieceRule(&g.board, g.PieceAt(sq("d4")), sq("d4"), sq(to)) {
			t.Errorf("knight d4->%s: want rejected", to)
		}
	}
}

func TestKnightJumpsOverPieces(t *testing.T) {
	// Surround the knight completely; every knight move must still work.
	g := emptyGame(White).put("d4", Piece{Type: Knight, Color: White})
	for _, s := range []string{"c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"} {
		g.put(s, Piece{Type: Pawn, Color: Black})
	}
	if !pieceRule(&g.board, g.PieceAt(sq("d4")), sq("d4"), sq("f5")) {
		t.Fatal("knight should jump over surrounding pieces")
	}
}

func TestKingGeometry(t *testing.T) {
	g := emptyGame(White).put("d4", Piece{Type: King, Color: White})

	for _, to := range []string{"c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"} {
		if !pieceRule(&g.board, g.PieceAt(sq("d4")), sq("d4"), sq(to)) {
			t.Errorf("king d4->%s: want accepted", to)
		}
	}
	for _, to := range []string{"d6", "f4", "f6", "b2"} {
		if pieceRule(&g.board, g.PieceAt(sq("d4")), sq("d4"), sq(to)) {
			t.Errorf("king d4->%s: want rejected", to)
		}
	}
}

func TestSliderGeometry(t *testing.T) {
	tests := []struct {
		name     string
		piece    PieceType
		from     string
		accepted []string
		rejected []string
	}{
		{
			name:     "bishop",
			piece:    Bishop,
			from:     "d4",
			accepted: []string{"a1", "h8", "a7", "g1"},
			rejected: []string{"d8", "a4", "e6"},
		},
		{
			name:     "rook",
			piece:    Rook,
			from:     "d4",
			accepted: []string{"d1", "d8", "a4", "h4"},
			rejected: []string{"e5", "c3", "e6"},
		},
		{
			name:     "queen",
			piece:    Queen,
			from:     "d4",
			accepted: []string{"d8", "h4", "a1", "g7"},
			rejected: []string{"e6", "c8", "b3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := emptyGame(White).put(tt.from, Piece{Type: tt.piece, Color: White})
			for _, to := range tt.accepted {
				if !pieceRule(&g.board, g.PieceAt(sq(tt.from)), sq(tt.from), sq(to)) {
					t.Errorf("%s %s->%s: want accepted", tt.name, tt.from, to)
				}
			}
			for _, to := range tt.rejected {
				if pieceRule(&g.board, g.PieceAt(sq(tt.from)), sq(tt.from), sq(to)) {
					t.Errorf("%s %s->%s: want rejected", tt.name, tt.from, to)
				}
			}
		})
	}
}

func TestPathClear(t *testing.T) {
	// Corridors of every length from 0 to 6 intermediate squares.
	g := emptyGame(White)
	corridors := []struct{ from, to string }{
		{"a1", "a2"}, // 0 intermediates
		{"a1", "b2"},
		{"a1", "a8"}, // 6 intermediates, straight
		{"a1", "h8"}, // 6 intermediates, diagonal
		{"h1", "a8"},
		{"d4", "d1"},
	}
	for _, c := range corridors {
		if !pathClear(&g.board, sq(c.from), sq(c.to)) {
			t.Errorf("pathClear %s->%s on empty board: want true", c.from, c.to)
		}
	}

	// One occupant on each intermediate square of a1->a8 blocks it.
	for rank := 2; rank <= 7; rank++ {
		g := emptyGame(White)
		g.board[8-rank][0] = Piece{Type: Pawn, Color: Black}
		if pathClear(&g.board, sq("a1"), sq("a8")) {
			t.Errorf("pathClear a1->a8 with occupant on a%d: want false", rank)
		}
	}
}

func TestPathClearIgnoresEndpoints(t *testing.T) {
	g := emptyGame(White).
		put("a1", Piece{Type: Rook, Color: White}).
		put("a8", Piece{Type: Rook, Color: Black})
	if !pathClear(&g.board, sq("a1"), sq("a8")) {
		t.Fatal("occupied endpoints must not affect path clearance")
	}
}

func TestSliderBlockedPath(t *testing.T) {
	g := emptyGame(White).
		put("d4", Piece{Type: Queen, Color: White}).
		put("d6", Piece{Type: Pawn, Color: Black})
	if pieceRule(&g.board, g.PieceAt(sq("d4")), sq("d4"), sq("d8")) {
		t.Fatal("queen may not slide through the pawn on d6")
	}
	// The blocking square itself is a legal destination.
	if !pieceRule(&g.board, g.PieceAt(sq("d4")), sq("d4"), sq("d6")) {
		t.Fatal("queen should reach the first occupied square")
	}
}

func TestPawnRule(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		setup func(*Game)
		from  string
		to    string
		want  bool
	}{
		{name: "white single advance", color: White, from: "e2", to: "e3", want: true},
		{name: "white double advance from home rank", color: White, from: "e2", to: "e4", want: true},
		{name: "white triple advance", color: White, from: "e2", to: "e5", want: false},
		{name: "white double advance off home rank", color: White, from: "e3", to: "e5", want: false},
		{name: "white backward", color: White, from: "e4", to: "e3", want: false},
		{
			name: "white advance onto occupied square", color: White, from: "e2", to: "e3", want: false,
			setup: func(g *Game) { g.put("e3", Piece{Type: Pawn, Color: Black}) },
		},
		{
			name: "white double advance over occupied square", color: White, from: "e2", to: "e4", want: false,
			setup: func(g *Game) { g.put("e3", Piece{Type: Pawn, Color: Black}) },
		},
		{
			name: "white diagonal capture", color: White, from: "e4", to: "d5", want: true,
			setup: func(g *Game) { g.put("d5", Piece{Type: Pawn, Color: Black}) },
		},
		{name: "white diagonal onto empty square", color: White, from: "e4", to: "d5", want: false},
		{
			name: "white diagonal onto own piece", color: White, from: "e4", to: "d5", want: false,
			setup: func(g *Game) { g.put("d5", Piece{Type: Pawn, Color: White}) },
		},
		{name: "black single advance", color: Black, from: "e7", to: "e6", want: true},
		{name: "black double advance from home rank", color: Black, from: "e7", to: "e5", want: true},
		{name: "black advance wrong direction", color: Black, from: "e5", to: "e6", want: false},
		{
			name: "black diagonal capture", color: Black, from: "d5", to: "e4", want: true,
			setup: func(g *Game) { g.put("e4", Piece{Type: Pawn, Color: White}) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := emptyGame(tt.color).put(tt.from, Piece{Type: Pawn, Color: tt.color})
			if tt.setup != nil {
				tt.setup(g)
			}
			got := pieceRule(&g.board, g.PieceAt(sq(tt.from)), sq(tt.from), sq(tt.to))
			if got != tt.want {
				t.Errorf("pawn %s->%s: got %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
