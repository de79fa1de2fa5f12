// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cabdesk/internal/config"
	httptransport "cabdesk/internal/http"
	"cabdesk/internal/infra"
	"cabdesk/internal/maps"
	"cabdesk/internal/modules/booking"
	"cabdesk/internal/modules/catalog"
	"cabdesk/internal/modules/fare"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("CABDESK_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	catalogStore := catalog.NewStore(dbPool)
	catalogSvc := catalog.NewService(catalogStore, cfg.Catalog.CacheTTL)

	sessionStore := fare.NewRedisSessionStore(redisClient, cfg.Quote.SessionTTL)
	sessions := fare.NewSessions(sessionStore, catalogSvc, cfg.Quote.DefaultCapacity, cfg.Quote.Currency)

	var publisher booking.EventPublisher
	if cfg.AMQP.URL != "" {
		conn, err := infra.NewAMQP(cfg.AMQP.URL)
		if err != nil {
			log.Fatalf("amqp init: %v", err)
		}
		defer conn.Close()
		publisher = booking.NewAMQPPublisher(conn)
	}

	bookingStore := booking.NewPostgresStore(dbPool)
	bookingSvc := booking.NewService(bookingStore, catalogSvc, publisher, cfg.Quote.Currency)

	var routeSvc *maps.RouteService
	if cfg.Maps.APIKey != "" {
		routeSvc, err = maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Catalog:        catalogSvc,
		CatalogStore:   catalogStore,
		Sessions:       sessions,
		Booking:        bookingSvc,
		Routes:         routeSvc,
		Verifier:       verifier,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
