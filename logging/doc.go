// Package logging supplies a process-wide default *zap.SugaredLogger,
// grounded on the Default/SetDefault/no-op-sink shape of the monitoring/
// logging package, simplified to skip its Logger-interface indirection
// (see logging.go for the rationale).
package logging
