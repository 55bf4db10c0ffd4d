package model

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/pseudo-shadow/chess-oopc/internal/engine"
	"github.com/pseudo-shadow/chess-oopc/internal/notation"
	"github.com/pseudo-shadow/chess-oopc/internal/render"
	"github.com/pseudo-shadow/chess-oopc/internal/ws"
)

// ErrNotSeated is returned when a move comes from someone who holds no
// seat in the game.
var ErrNotSeated = errors.New("player not seated in this game")

// GameConnections is the set of live WebSocket connections observing a
// single game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one session: the rules engine plus seats, clocks and
// observers. The engine itself carries no locking, so every
// validate-and-mutate sequence runs under g.mu — that is the per-game
// serialization the engine requires.
type Game struct {
	ID          string
	mu          sync.Mutex
	engine      *engine.Game
	players     Players
	whiteClock  *Clock
	blackClock  *Clock
	lastMove    *MoveRecord
	connections *GameConnections
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// GameState is the JSON snapshot broadcast to clients. Board cells are
// nullable piece descriptors exposing variant and color only.
type GameState struct {
	Board    [8][8]*engine.Piece `json:"board"`
	ToMove   engine.Color        `json:"toMove"`
	GameOver bool                `json:"gameOver"`
	LastMove *MoveRecord         `json:"lastMove"`
	Players  Players             `json:"players"`
}

func NewGame(id string, clockBudget time.Duration) *Game {
	return &Game{
		ID:          id,
		engine:      engine.NewGame(),
		whiteClock:  NewClock(clockBudget),
		blackClock:  NewClock(clockBudget),
		connections: NewGameConnections(),
	}
}

// AddPlayer seats a player: first join is White, second is Black.
func (g *Game) AddPlayer(playerID string) (engine.Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{
			ID:         playerID,
			Color:      engine.White,
			TimeLeftMS: g.whiteClock.Remaining().Milliseconds(),
		}
		return engine.White, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{
			ID:         playerID,
			Color:      engine.Black,
			TimeLeftMS: g.blackClock.Remaining().Milliseconds(),
		}
		return engine.Black, nil
	}
	return "", errors.New("game is full")
}

// seatColor returns the color playerID is seated at, or "" if none.
func (g *Game) seatColor(playerID string) engine.Color {
	switch {
	case playerID != "" && g.players.White.ID == playerID:
		return engine.White
	case playerID != "" && g.players.Black.ID == playerID:
		return engine.Black
	}
	return ""
}

// MakeMove runs one move attempt end to end: seat check, engine gates,
// clock hand-off, last-move record, broadcast. Engine rejections come
// back unwrapped so callers can map them to wire reason codes.
func (g *Game) MakeMove(playerID string, req MoveRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	mover := g.seatColor(playerID)
	if mover == "" {
		return ErrNotSeated
	}
	if mover != g.engine.ToMove() {
		return engine.ErrWrongTurn
	}

	applied, err := g.engine.AttemptMove(req.From, req.To)
	if err != nil {
		return err
	}

	switch mover {
	case engine.White:
		g.whiteClock.Stop()
		g.blackClock.Start()
	case engine.Black:
		g.blackClock.Stop()
		g.whiteClock.Start()
	}
	g.players.White.TimeLeftMS = g.whiteClock.Remaining().Milliseconds()
	g.players.Black.TimeLeftMS = g.blackClock.Remaining().Milliseconds()

	record := &MoveRecord{
		From:  notation.Square(applied.From),
		To:    notation.Square(applied.To),
		Piece: applied.Piece,
	}
	if applied.IsCapture() {
		captured := applied.Captured
		record.Capture = &captured
	}
	g.lastMove = record

	if g.engine.IsGameOver() {
		g.whiteClock.Stop()
		g.blackClock.Stop()
	}

	go g.broadcastState()

	return nil
}

// State builds a snapshot for clients.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := GameState{
		ToMove:   g.engine.ToMove(),
		GameOver: g.engine.IsGameOver(),
		LastMove: g.lastMove,
		Players:  g.players,
	}
	g.engine.EachSquare(func(c engine.Coord, p engine.Piece) {
		if p.IsEmpty() {
			return
		}
		piece := p
		state.Board[c.Rank][c.File] = &piece
	})
	return state
}

// Render returns the ASCII board diagram.
func (g *Game) Render() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return render.Text(g.engine)
}

// IsGameOver polls the termination rule: a side's king is gone.
func (g *Game) IsGameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine.IsGameOver()
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seatColor(playerID) != ""
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

// RegisterConnection attaches a WebSocket connection to the game and
// pushes the current state to it. Seated players and spectators (while
// seats remain open) are admitted; a duplicate connection for the same
// player is closed politely and the existing one kept.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := g.seatColor(playerID) != "" || g.canSpectate()
	g.mu.Unlock()

	if !authorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() {
	payload, err := json.Marshal(g.State())
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}
	msg := ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: send state to %s: %v", g.ID, playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
