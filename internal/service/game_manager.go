package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/pseudo-shadow/chess-oopc/internal/model"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns every live game plus the matchmaking queue. Game
// lookups take the manager lock; move execution happens under each
// game's own mutex so one slow game cannot stall the rest.
type GameManager struct {
	games            map[string]*model.Game
	queue            *model.Queue
	matchingChannels map[string]chan string
	clockBudget      time.Duration
	mu               sync.RWMutex
}

func NewGameManager(matchInterval, clockBudget time.Duration) *GameManager {
	gm := &GameManager{
		games:            make(map[string]*model.Game),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
		clockBudget:      clockBudget,
	}

	go gm.processMatchmaking(matchInterval)

	return gm
}

// RegisterMatchmakingChannel registers the channel a waiting player's
// connection listens on. A stale channel for the same player is closed
// and replaced.
func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}

	gm.matchingChannels[playerID] = ch
	return nil
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.matchingChannels, playerID)
}

// processMatchmaking pairs the two longest-waiting players on each
// tick, creates their game, and notifies both over their registered
// channels.
func (gm *GameManager) processMatchmaking(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		gm.mu.Lock()
		for gm.queue.Size() >= 2 {
			player1, player2 := gm.queue.GetNextPair()

			gameID := uuid.New().String()
			game := model.NewGame(gameID, gm.clockBudget)

			p1Color, err := game.AddPlayer(player1.ID)
			if err != nil {
				log.Printf("matchmaking: seat %s: %v", player1.ID, err)
				continue
			}
			p2Color, err := game.AddPlayer(player2.ID)
			if err != nil {
				log.Printf("matchmaking: seat %s: %v", player2.ID, err)
				continue
			}
			gm.games[gameID] = game

			gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
			gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
		}
		gm.mu.Unlock()
	}
}

// notifyMatch sends the event to the player's channel, if one is
// registered, then closes it. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		log.Printf("matchmaking: no channel registered for %s", playerID)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("matchmaking: marshal event for %s: %v", playerID, err)
		return
	}

	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		log.Printf("matchmaking: channel full for %s", playerID)
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	gm.games[gameID] = model.NewGame(gameID, gm.clockBudget)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (string, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}

	color, err := game.AddPlayer(playerID)
	return string(color), err
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.State(), nil
}

// RenderBoard returns the game's ASCII board diagram.
func (gm *GameManager) RenderBoard(gameID string) (string, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.Render(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, req model.MoveRequest) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, req)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
