package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BartekFo/maze-lab/api"
	api_i "github.com/BartekFo/maze-lab/api/i"
	"github.com/BartekFo/maze-lab/api/mazeapi"
	"github.com/BartekFo/maze-lab/config"
	"github.com/BartekFo/maze-lab/service"
	"github.com/BartekFo/maze-lab/service/i"
	"github.com/BartekFo/maze-lab/storage"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient    *redis.Client
	mazeStore      i.MazeStore
	mazeLocker     i.MazeLocker
	mazeService    i.MazeManager
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func newComponentLogger(prefix, color string) *log.Logger {
	return log.New(os.Stdout, color+"["+prefix+"] "+config.ColorReset, log.LstdFlags)
}

func initStore() {
	if config.Envs.MazeStore != "redis" {
		memStore := storage.NewMemoryMazeStore()
		mazeStore, mazeLocker = memStore, memStore
		appLogger.Println("In-memory maze store initialized")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("Redis ping failed: %v", err)
		os.Exit(1)
	}

	store, err := storage.NewRedisMazeStore(redisClient, config.Envs.MazeTTLSeconds)
	if err != nil {
		appLogger.Printf("Creating Redis maze store: %v", err)
		os.Exit(1)
	}
	mazeStore, mazeLocker = store, store
	appLogger.Println("Redis maze store initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(mazeStore, mazeLocker, &service.Options{
		MaxDimension: config.Envs.MazeMaxDimension,
		Logger:       newComponentLogger("MAZE", config.ColorCyan),
	})
	if err != nil {
		appLogger.Printf("Creating maze service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Printf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Println("Router initialized")
}

func main() {
	gin.SetMode(config.Envs.GinMode)
	appLogger = newComponentLogger("APP", config.ColorGreen)

	// Initialize dependencies
	initStore()
	if redisClient != nil {
		defer redisClient.Close()
	}
	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("Starting server: %v", err)
		os.Exit(1)
	}
}
