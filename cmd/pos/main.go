package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"

	"github.com/yuzvak/farmshop-service/internal/application"
	"github.com/yuzvak/farmshop-service/internal/application/ports"
	"github.com/yuzvak/farmshop-service/internal/config"
	"github.com/yuzvak/farmshop-service/internal/domain/transaction"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/directory"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/display"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/inventory"
	"github.com/yuzvak/farmshop-service/internal/pkg/clock"
	"github.com/yuzvak/farmshop-service/internal/pkg/generator"
	"github.com/yuzvak/farmshop-service/internal/pkg/logger"
)

var log = logging.MustGetLogger("log")

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise logging: %v\n", err)
		os.Exit(1)
	}

	var inv ports.Inventory
	switch cfg.Inventory {
	case "basic":
		inv = inventory.NewBasic()
	default:
		inv = inventory.NewFancy()
	}

	manager := transaction.NewManager(clock.NewRealClock(), generator.NewCodeGenerator())
	farm := application.NewFarm(inv, directory.NewAddressBook(), display.NewReceiptPrinter(cfg.StoreName), manager)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println()
		log.Info("Closing up the shop")
		os.Exit(0)
	}()

	log.Infof("Shop open with the %s inventory, type 'help' for commands", cfg.Inventory)
	newShell(farm, os.Stdin, os.Stdout).run()
	log.Info("Closing up the shop")
}
