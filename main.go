/* main.go
 * Bootstraps the league hub: loads configuration, connects the store and
 * runs the web server until interrupted.
 * Usage: go run main.go -addr=":3000"
 */

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"leaguehub/store"
	"leaguehub/web"
)

func main() {
	// A missing .env file is fine in production where the environment is
	// set by the deployment.
	_ = godotenv.Load()

	addrPtr := flag.String("addr", ":3000", "listen address for the web server")
	dbPtr := flag.String("db", envOr("DB_NAME", "leaguehub"), "database name")
	devPtr := flag.Bool("dev", false, "use console log output")
	flag.Parse()

	var log *zap.Logger
	var err error
	if *devPtr {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI must be set")
	}
	adminKey := os.Getenv("ADMIN_KEY")
	if adminKey == "" {
		log.Fatal("ADMIN_KEY must be set")
	}
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	s, err := store.NewStore(ctx, *dbPtr, mongoURI, log)
	cancel()
	if err != nil {
		log.Fatal("failed to initialize store", zap.Error(err))
	}
	defer func() {
		if err := s.Disconnect(context.Background()); err != nil {
			log.Error("error disconnecting from store", zap.Error(err))
		}
	}()

	server, err := web.NewServer(web.Config{
		Addr:          *addrPtr,
		AdminKey:      adminKey,
		SessionSecret: sessionSecret,
		Store:         s,
		Log:           log,
		Clock:         clock.New(),
	})
	if err != nil {
		log.Fatal("failed to initialize web server", zap.Error(err))
	}

	shutdown := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		close(shutdown)
	}()

	if err := server.Start(shutdown, &wg); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
	wg.Wait()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
