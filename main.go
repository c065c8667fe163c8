package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrmsproject/database"
	"hrmsproject/handlers"
	repository "hrmsproject/repositories"
	routes "hrmsproject/routes"
	services "hrmsproject/services"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := setupLogger(os.Getenv("ENV"))

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		// Fall back to building an Atlas connection string from parts
		username := os.Getenv("MONGO_USERNAME")
		password := os.Getenv("MONGO_PASSWORD")
		cluster := os.Getenv("MONGO_CLUSTER")
		appName := os.Getenv("MONGO_APP_NAME")

		if username == "" || password == "" || cluster == "" || appName == "" {
			log.Fatal("Missing required environment variables: set MONGO_URI or MONGO_USERNAME/MONGO_PASSWORD/MONGO_CLUSTER/MONGO_APP_NAME")
		}

		uri = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s",
			username, password, cluster, appName)
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	logger.Info("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "ethara_hrms"
	}
	db := client.Database(dbName)

	if err := database.CreateIndexes(db); err != nil {
		logger.Warn("Failed to create indexes", "error", err)
	}

	// Initialize repositories, services, and handlers
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	employeeService := services.NewEmployeeService(logger, employeeRepo)
	attendanceService := services.NewAttendanceService(logger, attendanceRepo, employeeRepo)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	healthHandler := handlers.NewHealthHandler(&mongoPinger{client: client})

	handler := routes.SetupRoutes(employeeHandler, attendanceHandler, healthHandler, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("ETHARA HRMS server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped gracefully")
}

// mongoPinger adapts the Mongo client to the health handler's DBPinger.
type mongoPinger struct {
	client *mongo.Client
}

func (p *mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

// setupLogger initializes a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
}
