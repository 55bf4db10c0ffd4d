package model

import (
	"fmt"
	"sync"
	"time"

	"github.com/pseudo-shadow/chess-oopc/internal/engine"
)

// MatchFoundEvent tells a queued player which game was created for
// them and which seat they got.
type MatchFoundEvent struct {
	GameID string       `json:"gameId"`
	Color  engine.Color `json:"color"`
}

type QueuedPlayer struct {
	Player   Player
	JoinedAt time.Time
}

// Queue is the FIFO matchmaking queue.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{players: []QueuedPlayer{}}
}

func (q *Queue) AddPlayer(player Player) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.Player.ID == player.ID {
			return fmt.Errorf("player already in queue")
		}
	}

	q.players = append(q.players, QueuedPlayer{Player: player, JoinedAt: time.Now()})
	return nil
}

// GetNextPair pops the two players who have been waiting longest. The
// caller must have checked Size() >= 2.
func (q *Queue) GetNextPair() (Player, Player) {
	q.mu.Lock()
	defer q.mu.Unlock()

	player1 := q.players[0].Player
	player2 := q.players[1].Player
	q.players = q.players[2:]

	return player1, player2
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
