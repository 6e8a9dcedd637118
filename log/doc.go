// Package log contains the default rategraph logger interface used by all
// engine packages.
//
// In order not to extort any specific logging package the engine logs through
// the uni-logger wrapper interfaces. Any logger implementing the
// unilogger.LeveledLogger interface may be set with SetLogger; resolution and
// assembly traces are written at the debug2/debug3 levels.
package log
