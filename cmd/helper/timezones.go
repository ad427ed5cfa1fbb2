package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helper/pkg/logger"
	"github.com/dmitrymomot/helper/pkg/timezone"
)

func newTimezonesCmd(a *app) *cobra.Command {
	var (
		format string
		dir    string
		ids    []string
	)

	cmd := &cobra.Command{
		Use:   "timezones",
		Short: "List time zones sorted by UTC offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			opts := []timezone.Option{timezone.WithZoneInfoDir(dir)}
			if len(ids) > 0 {
				opts = append(opts, timezone.WithIdentifiers(ids...))
			}

			zones, err := timezone.All(opts...)
			if err != nil {
				a.component("timezone").ErrorContext(cmd.Context(), "listing time zones failed",
					logger.Command(commandName(cmd)), logger.Error(err))
				return err
			}

			a.component("timezone").InfoContext(cmd.Context(), "time zones listed",
				logger.Command(commandName(cmd)), logger.Count(len(zones)), logger.OutputFormat(format),
				logger.Group("source", slog.String("zoneinfo", dir), slog.Int("identifiers", len(ids))))

			lines := make([]string, 0, len(zones))
			for _, z := range zones {
				lines = append(lines, z.Name)
			}
			return render(cmd.OutOrStdout(), format, zones, lines)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", a.cfg.OutputFormat, "output format: text, json or yaml")
	cmd.Flags().StringVar(&dir, "zoneinfo", a.cfg.ZoneInfoDir, "zoneinfo directory to read identifiers from")
	cmd.Flags().StringSliceVar(&ids, "zone", nil, "only list these identifiers (repeatable)")
	return cmd
}
