package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"github.com/spf13/cobra"

	"github.com/pseudo-shadow/chess-oopc/internal/config"
	"github.com/pseudo-shadow/chess-oopc/internal/controller"
	"github.com/pseudo-shadow/chess-oopc/internal/middleware"
	"github.com/pseudo-shadow/chess-oopc/internal/service"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:          "chess-server",
		Short:        "HTTP and WebSocket server for two-player chess",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowOrigins, ", "),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	gameManager := service.NewGameManager(cfg.MatchInterval(), cfg.ClockBudget())
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Use("/ws", middleware.EnsurePlayerID(), middleware.WebSocketUpgrade())
	app.Get("/ws/game/:gameId", websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))
	app.Get("/ws/matchmaking", websocket.New(wsController.HandleMatchmaking, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Get("/:gameId/board", gameController.GetBoard)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	return app.Listen(cfg.Addr)
}
