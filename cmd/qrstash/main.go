package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"emvstash/internal/config"
	"emvstash/internal/qrserver"
	"emvstash/internal/qrstore"
	"emvstash/internal/schema"
)

func main() {
	logger, err := zap.NewDevelopment() // or NewProduction, or NewDevelopment
	if err != nil {
		log.Fatal(err)
	}
	conf := config.NewConfig()

	store, err := qrstore.NewStore(schema.NewRegistry(), conf, logger)
	if err != nil {
		log.Fatal(err)
	}
	s := qrserver.NewQREditServer(store, conf, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.Start(ctx); err != nil {
		log.Println(err)
	}

	s.Wait()
}
