package main

import (
	"fmt"
	"os"
	"os/signal"
	"stegbench/internal/cli"
	"syscall"
)

func main() {
	rootCmd := cli.NewRootCommand()

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	onKill := func(c chan os.Signal) {
		<-c
		rootCmd.Stop()
		os.Exit(1)
	}
	go onKill(c)

	err := rootCmd.Execute()
	rootCmd.Stop()
	if err != nil {
		rootCmd.Logger().WithError(err).Error("Command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
