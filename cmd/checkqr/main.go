package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	address := flag.String("ADDRESS", "127.0.0.1:3200", "qrstash server address")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}

	checker, err := NewChecker(*address, logger)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	checker.Go(ctx)

	if err := checker.Wait(); err != nil {
		log.Println(err)
	}
}
