package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/mr-procrastinator/defi-idea-analyse/config"
	"github.com/mr-procrastinator/defi-idea-analyse/core"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

func main() {
	configureLog(config.Env.EnvName)

	// init context for graceful shutdown
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// load config
	cfg, err := config.LoadConfig(config.Env.EnvName)
	if err != nil {
		log.Fatalf("fail to load config: %v", err)
	}

	// trap signal for graceful shutdown
	setupSignalHandler(cancel)

	// 🧠 core: analysis pipeline + collaborators
	app, err := core.Bootstrap(*cfg)
	if err != nil {
		log.Panicf("fail to bootstrap app: %v", err)
	}

	// 📨 telegram: message transport module
	if app.Bot != nil {
		go func() {
			if err := app.Bot.Run(rootCtx); err != nil {
				log.Errorf("telegram bot stopped: %v", err)
				cancel()
			}
		}()
	}

	// 🌩️ fiber: rest API module
	fApp := core.SetupFiberApp(app.Analyzer)
	go func() {
		<-rootCtx.Done()
		core.ShutdownFiberApp(fApp)
	}()

	port := 3000
	if cfg.Server != nil && cfg.Server.Port != 0 {
		port = cfg.Server.Port
	}
	if err := fApp.Listen(fmt.Sprintf(":%v", port)); err != nil {
		log.Panic(err)
	}
}

func configureLog(envName types.EnvName) {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if envName == types.EnvLocal || envName == types.EnvDev {
		log.SetLevel(log.DebugLevel)
	}
}

func setupSignalHandler(cancel context.CancelFunc) {
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigC
		log.Info("🚩 received shutdown signal")
		cancel()
	}()
}
