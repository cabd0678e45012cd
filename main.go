// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"schoolku_backend/internals/configs"
	database "schoolku_backend/internals/databases"
	"schoolku_backend/internals/middlewares"
	"schoolku_backend/internals/route"
	"schoolku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	app := fiber.New(fiber.Config{
		AppName:     "schoolku_backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   10 * 1024 * 1024, // roster/marksheet uploads
	})

	app.Use(requestid.New())
	middlewares.SetupMiddlewares(app)
	app.Use(middlewares.DBMiddleware(database.DB))
	app.Use(etag.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	route.SetupRoutes(app, database.DB)

	if configs.GetEnv("RUN_SEEDS", "false") == "true" {
		seeds.Run(database.DB)
	}

	// graceful shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("🛑 Shutting down...")
		_ = app.Shutdown()
	}()

	port := configs.GetEnv("PORT", "3000")
	log.Printf("🚀 Listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
