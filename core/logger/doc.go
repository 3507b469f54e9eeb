// Package logger provides the zap-based application logger.
//
// It builds a development (console) or production (json) logger from
// configuration and exposes WithRayID to bind the per-request tracing
// id into log entries.
package logger
