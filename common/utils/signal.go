package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// SignalHandler delivers one message when the process receives SIGINT or
// SIGTERM.
func SignalHandler() chan os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return sigs
}
