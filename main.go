/*
Demo application for the prisma software renderer: loads prisma.toml, builds
the testbed scene and presents it in a window.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/prisma/engine"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/platform"
	"github.com/spaghettifunk/prisma/testbed"
)

func main() {
	cfg, err := engine.LoadApplicationConfig("prisma.toml")
	if err != nil {
		panic(err)
	}
	core.SetLogLevel(cfg.LogLevel)

	game, err := testbed.NewTestGame(cfg)
	if err != nil {
		panic(err)
	}

	window, err := platform.NewWindow(cfg.Name, game.Scene)
	if err != nil {
		panic(err)
	}
	window.Assets = game.Assets
	window.OnFrame = game.Frame
	window.HUD = game.HUD

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		_ = game.Shutdown()
		os.Exit(0)
	}()

	if err := window.Run(); err != nil {
		panic(err)
	}
	_ = game.Shutdown()
}
