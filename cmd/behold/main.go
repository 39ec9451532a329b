package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rafal.dev/behold/command"
	"rafal.dev/behold/command/behold"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app := command.NewApp(ctx)
	cmd := behold.NewCommand(app)

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
