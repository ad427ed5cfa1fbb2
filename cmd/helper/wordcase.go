package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/helper/pkg/logger"
	"github.com/dmitrymomot/helper/pkg/wordcase"
)

func newCaseCmd(a *app) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "case",
		Short: "Convert identifiers between camelCase, snake_case and title words",
	}
	cmd.PersistentFlags().StringVar(&lang, "lang", "und", "BCP 47 language used for letter casing")

	conversions := []struct {
		use   string
		short string
		fn    func(*wordcase.Converter, string) string
	}{
		{use: "snake", short: "camelCase to snake_case", fn: (*wordcase.Converter).CamelToSnake},
		{use: "camel", short: "snake_case to camelCase", fn: (*wordcase.Converter).SnakeToCamel},
		{use: "title", short: "identifier to Title Words", fn: (*wordcase.Converter).TitleWords},
	}

	for _, conv := range conversions {
		cmd.AddCommand(&cobra.Command{
			Use:   conv.use + " VALUE...",
			Short: conv.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tag, err := language.Parse(lang)
				if err != nil {
					return fmt.Errorf("invalid language %q: %w", lang, err)
				}

				c := wordcase.New(tag)
				for _, v := range args {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), conv.fn(c, v)); err != nil {
						return err
					}
				}

				a.component("wordcase").DebugContext(cmd.Context(), "values converted",
					logger.Command(commandName(cmd)), logger.Count(len(args)))
				return nil
			},
		})
	}

	return cmd
}
