package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/kulsum-786/student-disengagement-prediction/internals/configs"
	"github.com/kulsum-786/student-disengagement-prediction/internals/databases"
	predictionService "github.com/kulsum-786/student-disengagement-prediction/internals/features/prediction/service"
	recordsService "github.com/kulsum-786/student-disengagement-prediction/internals/features/records/service"
	"github.com/kulsum-786/student-disengagement-prediction/internals/middlewares"
	routes "github.com/kulsum-786/student-disengagement-prediction/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// Build or load the model once; everything downstream gets the handle.
	// A broken dataset or artifact write is fatal, a missing artifact is not.
	engine, err := predictionService.LoadOrTrain(configs.DataPath, configs.ModelPath)
	if err != nil {
		log.Fatalf("❌ Model bootstrap failed: %v", err)
	}

	// Record store connect; degraded persistence never blocks scoring.
	db := databases.ConnectMongo()
	store := recordsService.NewMongoStore(db)

	routes.SetupRoutes(app, engine, store)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	databases.CloseMongo()
}
