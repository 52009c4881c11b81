package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	console_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/core/adapter/in/console"
	memory_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-ledger/pkg/config"
	"github.com/JoeShih716/go-bank-ledger/pkg/logging"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	scriptPath := flag.String("script", "", "path to operation script (overrides config)")
	flag.Parse()

	// 1. 載入設定
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *scriptPath != "" {
		cfg.Script = *scriptPath
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	// 2. 載入腳本
	script := console_adapter.DefaultScript()
	if cfg.Script != "" {
		script, err = console_adapter.LoadScript(cfg.Script)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
	}
	logger.Info("script loaded", "accounts", len(script.Accounts), "operations", len(script.Operations))

	// 3. 初始化 Ledger 與 UseCase
	ledger := memory_adapter.NewMapLedger()
	coreUseCase := usecase.NewCoreUseCase(ledger, logger)

	// 4. 執行 (Driving Adapter)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := console_adapter.NewRunner(coreUseCase, console_adapter.NewPresenter(os.Stdout))
	if err := runner.Run(ctx, script); err != nil {
		logger.Error("script aborted", "error", err)
		stop()
		os.Exit(1)
	}
}
