package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// contextTimeout derives a bounded context from the command.
func contextTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), d)
}

// context5s is the default bound for local storage operations.
func context5s(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return contextTimeout(cmd, 5*time.Second)
}
