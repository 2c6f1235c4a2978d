package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	discovery "github.com/auth0/go-oidc-discovery"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	logger *zap.Logger
	level  zap.AtomicLevel
	config *configuration
	client *discovery.Client
}

func newRootCommand(logger *zap.Logger, level zap.AtomicLevel) *cobra.Command {
	a := &app{logger: logger, level: level}
	var configFile string

	rootCommand := &cobra.Command{
		Use:   "oidc-discover",
		Short: "oidc-discover prints OpenID Connect provider metadata",
		Long: `oidc-discover retrieves the .well-known/openid-configuration document of
OpenID Connect issuers and prints it either as published or validated.`,
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(a.logger, cmd.Flags(), configFile)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if conf.Debug {
				a.level.SetLevel(zapcore.DebugLevel)
			}
			a.config = conf

			client, err := discovery.New(
				discovery.WithHTTPClient(&http.Client{Timeout: conf.Timeout}),
				discovery.WithDefaults(conf.Defaults),
				discovery.WithIssuerOriginOnly(conf.OriginOnly),
				discovery.WithLogger(discovery.NewZapLogger(a.logger.Sugar())),
			)
			if err != nil {
				return err
			}
			a.client = client
			return nil
		},
	}

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file to be used")
	flags.Bool("defaults", false, "add the standard defaults for absent properties")
	flags.Bool("origin-only", false, "only compare scheme, host and port of the issuer")
	flags.Duration("timeout", 10*time.Second, "timeout of each metadata request")
	flags.Bool("debug", false, "enable debug logging")

	rootCommand.AddCommand(newRawCommand(a))
	rootCommand.AddCommand(newParsedCommand(a))

	return rootCommand
}

// each runs fn for every issuer and reports how many failed. Every failure
// is logged; the first one is returned.
func (a *app) each(ctx context.Context, issuers []string, fn func(ctx context.Context, issuer string) error) error {
	var first error
	failed := 0
	for _, issuer := range issuers {
		if err := fn(ctx, issuer); err != nil {
			a.logger.Error("Discovery failed", zap.String("issuer", issuer), zap.Error(err))
			failed++
			if first == nil {
				first = err
			}
		}
	}
	if first != nil {
		return fmt.Errorf("%d of %d issuers failed: %w", failed, len(issuers), first)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
