// Package logger builds the panel's zap logger.
//
// Level selects the base configuration (development for debug, production
// otherwise) and the minimum enabled level; Format picks json or console
// encoding. WithRayID attaches the request id that the rayid middleware
// stored in the fiber context, so every line logged for one request can be
// correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	logger.WithRayID(log, c).Error("handler failed", zap.Error(err))
package logger
