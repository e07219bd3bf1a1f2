package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bonsai-backend/internal/config"
	"bonsai-backend/internal/database"
	"bonsai-backend/internal/handlers"
	"bonsai-backend/internal/payments"
	"bonsai-backend/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)
	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}

	s := store.New(db)
	gateway := payments.New(config.AppEnv.StripeSecret)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bonsai shop server is running")
	})

	r.GET("/trees", handlers.GetTrees(s))
	r.GET("/trees/:id", handlers.GetTree(s))
	r.POST("/trees", handlers.CreateTree(s))
	r.DELETE("/trees/:id", handlers.DeleteTree(s))

	r.GET("/orders", handlers.GetOrders(s))
	r.GET("/orders/:id", handlers.GetOrder(s))
	r.POST("/orders", handlers.CreateOrder(s))
	r.PUT("/orders/:id", handlers.ShipOrder(s))
	r.PUT("/order/:id", handlers.AttachPayment(s))
	r.DELETE("/orders/:id", handlers.DeleteOrder(s))

	r.GET("/users/:email", handlers.GetAdminFlag(s))
	r.POST("/users", handlers.CreateUser(s))
	r.PUT("/users", handlers.UpsertUser(s))
	r.PUT("/users/admin", handlers.MakeAdmin(s))

	r.GET("/reviews", handlers.GetReviews(s))
	r.POST("/reviews", handlers.CreateReview(s))

	r.POST("/create-payment-intent", handlers.CreatePaymentIntent(gateway))

	srv := &http.Server{
		Addr:    ":" + config.AppEnv.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Listening on :" + config.AppEnv.Port)
	if err := runServer(ctx, srv); err != nil {
		log.Println("server error:", err)
	}

	if err := database.Disconnect(client); err != nil {
		log.Println("mongo disconnect:", err)
	}
}

// runServer serves until the context is canceled or the listener fails,
// then drains in-flight requests. It returns on both paths, so the
// caller's cleanup always runs.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
