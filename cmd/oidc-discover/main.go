// Command oidc-discover prints the OpenID Connect provider metadata of one or
// more issuers.
//
//	oidc-discover raw https://accounts.google.com
//	oidc-discover parsed --origin-only https://login.microsoftonline.com/common/v2.0
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	Version   = "?"
	GitCommit = "-"
)

func main() {
	logger, level := bootstrap()
	defer func() {
		_ = logger.Sync()
	}()

	if err := newRootCommand(logger, level).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bootstrap() (*zap.Logger, zap.AtomicLevel) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		log.Fatal(err)
	}
	return logger, cfg.Level
}
