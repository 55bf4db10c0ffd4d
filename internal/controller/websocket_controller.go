package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/pseudo-shadow/chess-oopc/internal/model"
	"github.com/pseudo-shadow/chess-oopc/internal/service"
	"github.com/pseudo-shadow/chess-oopc/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection runs the read loop for one game connection: moves
// in, state broadcasts and rejection messages out.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("ws: register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("ws: parse message: %v", err)
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendRejection(c, err)
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, req)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// sendRejection reports a refused move back on the same connection.
func (wsc *WebSocketController) sendRejection(c *websocket.Conn, cause error) {
	payload, err := json.Marshal(model.Rejection{
		Reason:  model.ReasonCode(cause),
		Message: cause.Error(),
	})
	if err != nil {
		log.Printf("ws: marshal rejection: %v", err)
		return
	}
	if err := c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	}); err != nil {
		log.Printf("ws: send rejection: %v", err)
	}
}

// HandleMatchmaking parks a queued player's connection until the
// manager pairs them, then delivers the match event and closes.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID := c.Locals("playerID").(string)

	ch := make(chan string, 1)
	if err := wsc.gameService.RegisterMatchmakingChannel(playerID, ch); err != nil {
		log.Printf("ws: register matchmaking channel: %v", err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterMatchmakingChannel(playerID)
	defer c.Close()

	payload, ok := <-ch
	if !ok {
		return
	}
	if err := c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeMatchFound,
		Payload: json.RawMessage(payload),
	}); err != nil {
		log.Printf("ws: send match event: %v", err)
	}
}
