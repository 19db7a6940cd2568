package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sigreg/cmd/sigreg/commands"
	"sigreg/internal/services/registration"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()
	os.Exit(registration.ExitCode(err))
}
