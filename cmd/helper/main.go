// Command helper exposes the helper packages on the command line: password
// generation, time zone listing and identifier case conversion.
//
// Configuration comes from the environment (and an optional .env file):
//
//	APP_ENV          development | staging | production (default development)
//	SERVICE_NAME     service attribute on log records (default helper)
//	LOG_LEVEL        debug | info | warn | error (default depends on APP_ENV)
//	PASSWORD_LENGTH  default length for `helper password` (default 16)
//	OUTPUT_FORMAT    text | json | yaml (default text)
//	ZONEINFO         zoneinfo directory for `helper timezones`
//
// Results are written to stdout, logs to stderr.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/helper/pkg/config"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "helper: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(newApp(cfg)).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
