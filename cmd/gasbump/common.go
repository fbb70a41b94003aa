package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mitchellh/go-homedir"
)

var homeDir string

func init() {
	var err error
	homeDir, err = homedir.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to determine home directory: %v\n", err)
		os.Exit(1)
	}
}

func cmdCtx() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		sig := <-ch
		fmt.Fprintf(os.Stderr, "Signal %q received\n", sig)
		cancel()
	}()
	return ctx
}
