// Package logger builds *slog.Logger instances from functional options and
// keeps attribute names consistent across the helper command line tools.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record so values stored in a context (an invocation id, for example)
// show up without being passed around explicitly.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "helper"),
//		logger.WithOutput(os.Stderr),
//		logger.WithContextValue("invocation_id", invocationKey{}),
//	)
//	log.InfoContext(ctx, "password generated", logger.Length(16))
//
// Production and staging environments log JSON at INFO, development logs text
// at DEBUG. Helper packages such as password and timezone never log; only the
// binaries wiring them do, and they never log generated secrets.
package logger
