package main

import (
	"log"

	"go.uber.org/zap"

	calc "github.com/ERRORIK404/Keypad_Calculator/internal/calculator_application"
	tui "github.com/ERRORIK404/Keypad_Calculator/internal/tui_application"
	conf "github.com/ERRORIK404/Keypad_Calculator/pkg/config"
)

func main() {
	cfg, err := conf.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Терминал занят интерфейсом, поэтому логи пишутся только в файл
	logger := zap.NewNop()
	if cfg.LogFile != "" {
		if logger, err = conf.NewLogger(cfg); err != nil {
			log.Fatalf("logger: %v", err)
		}
	}
	defer logger.Sync()

	blobs, closeBlobs, err := calc.OpenBlobs(cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer closeBlobs()

	c := calc.Open(blobs, cfg.HistoryKey, cfg.HistoryLimit, logger)
	if err := tui.Run(c); err != nil {
		logger.Error("keypad stopped", zap.Error(err))
		log.Fatal(err)
	}
}
