package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRawCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <issuer>...",
		Short: "Prints the metadata documents as published",
		Long: `This will fetch the metadata document of every issuer and print it
as indented JSON. Only the shape of the document is checked.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd.Context(), args, func(ctx context.Context, issuer string) error {
				ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
				defer cancel()

				raw, err := a.client.RawMetadata(ctx, issuer)
				if err != nil {
					return err
				}
				a.logger.Debug("Retrieved raw metadata", zap.String("issuer", issuer), zap.Int("properties", len(raw)))
				return writeJSON(cmd, raw)
			})
		},
	}
}
