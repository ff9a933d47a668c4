package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/stocktake/stocktake/internal/api"
	"github.com/stocktake/stocktake/internal/impl/config"
	"github.com/stocktake/stocktake/internal/impl/integrations"
	"github.com/stocktake/stocktake/internal/impl/tools"
)

var (
	version = "unknown" // This should be set during build with -ldflags="-X main.version=1.0.0"
)

func main() {
	// Check version flag first
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version)
		os.Exit(0)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stocktake [serve] [--addr=host:port] [tool-name [arguments-json]]\n")
		flag.PrintDefaults()
	}

	addr := flag.String("addr", ":8090", "Listen address for serve mode")

	// Default mode is "console"
	modeStr := "console"

	// Check the first non-flag argument for the mode
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		modeStr = "serve"
		os.Args = slices.Delete(os.Args, 0, 1)
	}

	flag.Parse()

	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	client, err := integrations.NewHomeboxClient(cfg.BaseURL, cfg.Username, cfg.Password, logger)
	if err != nil {
		logger.Fatal("Failed to initialize inventory client", zap.Error(err))
	}

	toolFactory, err := tools.NewToolFactory()
	if err != nil {
		logger.Fatal("Failed to initialize tool factory", zap.Error(err))
	}
	toolList, err := toolFactory.BuildAll(client, logger)
	if err != nil {
		logger.Fatal("Failed to build tools", zap.Error(err))
	}

	if modeStr == "serve" {
		server := api.NewServer(toolList, logger)
		if err := server.Start(*addr); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
		return
	}

	// Console mode: no arguments lists the tools, otherwise execute one.
	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Available tools:")
		for _, tool := range toolList {
			fmt.Printf("  %-22s %s\n", tool.Name(), tool.Description())
		}
		return
	}

	name := args[0]
	arguments := "{}"
	if len(args) > 1 {
		arguments = args[1]
	}

	for _, tool := range toolList {
		if tool.Name() == name {
			result, err := tool.Execute(arguments)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			fmt.Println(result)
			return
		}
	}

	fmt.Fprintf(os.Stderr, "Unknown tool: %s\n", name)
	os.Exit(1)
}
