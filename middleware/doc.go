// Package middleware provides write middleware for pipes fittings.
//
// Middleware wraps the write path of a fitting with additional behavior such
// as logging, panic recovery, header stamping and metrics collection. Apply it
// with pipes.Use:
//
//	metrics, _ := middleware.NewMetrics(prometheus.DefaultRegisterer)
//	queue := pipes.Use(pipes.NewQueue(pipes.QueueConfig{}),
//		middleware.Recover(nil),
//		middleware.Slog("fitting", "queue"),
//		metrics.Middleware("queue"),
//	)
package middleware
