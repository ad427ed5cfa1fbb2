package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helper/pkg/logger"
	"github.com/dmitrymomot/helper/pkg/password"
)

// maxLength bounds --length; the shuffle is quadratic in the length.
const maxLength = 4096

var (
	errWeakPassword  = errors.New("password does not cover every character class")
	errLengthTooLong = errors.New("password length exceeds the maximum")
)

type checkResult struct {
	Password string `json:"password" yaml:"password"`
	Valid    bool   `json:"valid" yaml:"valid"`
}

func newPasswordCmd(a *app) *cobra.Command {
	var (
		length int
		count  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate random passwords",
		Long: fmt.Sprintf(`Generate passwords containing at least one lowercase letter, one uppercase
letter, one digit and one special character (%s).
The length must be between %d and %d.`, "!@#$%^&*()_-=+;:,.?", password.MinLength, maxLength),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if length > maxLength {
				return fmt.Errorf("%w of %d: %d", errLengthTooLong, maxLength, length)
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			passwords := make([]string, 0, count)
			for range count {
				pw, err := a.gen.Generate(length)
				if err != nil {
					a.component("password").WarnContext(cmd.Context(), "password generation rejected",
						logger.Command(commandName(cmd)), logger.Length(length), logger.Error(err))
					return err
				}
				passwords = append(passwords, pw)
			}

			a.component("password").InfoContext(cmd.Context(), "passwords generated",
				logger.Command(commandName(cmd)), logger.Length(length), logger.Count(count))

			return render(cmd.OutOrStdout(), format, passwords, passwords)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", a.cfg.PasswordLength, "password length")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords")
	cmd.Flags().StringVarP(&format, "format", "f", a.cfg.OutputFormat, "output format: text, json or yaml")

	cmd.AddCommand(newPasswordCheckCmd(a))
	return cmd
}

func newPasswordCheckCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check PASSWORD...",
		Short: "Check that passwords use the generator alphabet and cover every class",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			results := make([]checkResult, 0, len(args))
			lines := make([]string, 0, len(args))
			failed := 0
			for _, pw := range args {
				ok := password.Valid(pw)
				if !ok {
					failed++
				}
				results = append(results, checkResult{Password: pw, Valid: ok})
				lines = append(lines, fmt.Sprintf("%s\t%s", status(ok), pw))
			}

			if err := render(cmd.OutOrStdout(), format, results, lines); err != nil {
				return err
			}

			a.component("password").InfoContext(cmd.Context(), "passwords checked",
				logger.Command(commandName(cmd)), logger.Count(len(args)))

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errWeakPassword, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", a.cfg.OutputFormat, "output format: text, json or yaml")
	return cmd
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "weak"
}
