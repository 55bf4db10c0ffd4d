package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/pseudo-shadow/chess-oopc/internal/engine"
	"github.com/pseudo-shadow/chess-oopc/internal/model"
)

func TestCreateAndGetGame(t *testing.T) {
	gm := NewGameManager(time.Hour, time.Minute)

	if err := gm.CreateGame("g1"); err != nil {
		t.Fatal(err)
	}
	if err := gm.CreateGame("g1"); err == nil {
		t.Fatal("duplicate game ID must be rejected")
	}
	if _, err := gm.GetGame("g1"); err != nil {
		t.Fatalf("GetGame(g1): %v", err)
	}
	if _, err := gm.GetGame("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("GetGame(missing): error = %v, want ErrGameNotFound", err)
	}
}

func TestMakeMoveThroughManager(t *testing.T) {
	gm := NewGameManager(time.Hour, time.Minute)
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatal(err)
	}
	if _, err := gm.AddPlayerToGame("g1", "alice"); err != nil {
		t.Fatal(err)
	}

	req := model.MoveRequest{From: sq(4, 6), To: sq(4, 4)} // e2 -> e4
	if err := gm.MakeMove("g1", "alice", req); err != nil {
		t.Fatalf("move: %v", err)
	}

	state, err := gm.GetGameState("g1")
	if err != nil {
		t.Fatal(err)
	}
	if state.LastMove == nil || state.LastMove.From != "e2" || state.LastMove.To != "e4" {
		t.Fatalf("LastMove = %+v, want e2->e4", state.LastMove)
	}

	if err := gm.MakeMove("missing", "alice", req); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("move in missing game: error = %v, want ErrGameNotFound", err)
	}
}

func TestRenderBoard(t *testing.T) {
	gm := NewGameManager(time.Hour, time.Minute)
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatal(err)
	}
	board, err := gm.RenderBoard("g1")
	if err != nil {
		t.Fatal(err)
	}
	if board == "" {
		t.Fatal("rendered board is empty")
	}
}

func TestMatchmakingPairsPlayers(t *testing.T) {
	gm := NewGameManager(10*time.Millisecond, time.Minute)

	channels := map[string]chan string{
		"alice": make(chan string, 1),
		"bob":   make(chan string, 1),
	}
	for playerID, ch := range channels {
		if err := gm.RegisterMatchmakingChannel(playerID, ch); err != nil {
			t.Fatal(err)
		}
	}
	for playerID := range channels {
		if err := gm.JoinMatchmaking(playerID); err != nil {
			t.Fatal(err)
		}
	}

	events := make(map[string]model.MatchFoundEvent, 2)
	for playerID, ch := range channels {
		select {
		case payload := <-ch:
			var ev model.MatchFoundEvent
			if err := json.Unmarshal([]byte(payload), &ev); err != nil {
				t.Fatalf("unmarshal event for %s: %v", playerID, err)
			}
			events[playerID] = ev
		case <-time.After(2 * time.Second):
			t.Fatalf("no match event for %s", playerID)
		}
	}

	alice, bob := events["alice"], events["bob"]
	if alice.GameID == "" || alice.GameID != bob.GameID {
		t.Fatalf("players matched into different games: %q vs %q", alice.GameID, bob.GameID)
	}
	if alice.Color == bob.Color {
		t.Fatalf("both players got color %s", alice.Color)
	}

	game, err := gm.GetGame(alice.GameID)
	if err != nil {
		t.Fatalf("matched game not found: %v", err)
	}
	if !game.IsPlayerInGame("alice") || !game.IsPlayerInGame("bob") {
		t.Fatal("matched players not seated in the created game")
	}
}

// sq builds a coordinate literal; rank uses the engine's top-down
// orientation.
func sq(file, rank int) engine.Coord {
	return engine.Coord{File: file, Rank: rank}
}
