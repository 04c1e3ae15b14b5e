// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oclog is the host-installable logging function described in
// spec §7: a thread-safe level filter in front of a host-supplied
// log/slog.Handler, the same thin-wrapper shape as the teacher's
// base/errors.Log.
package oclog

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Level mirrors the spec's {None, Warning, Info, Debug} logging levels.
type Level int32

const (
	None Level = iota
	Warning
	Info
	Debug
)

func (l Level) String() string {
	switch l {
	case None:
		return "None"
	case Warning:
		return "Warning"
	case Info:
		return "Info"
	case Debug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// ParseLevel maps OCIO_LOGGING_LEVEL string values to a Level, defaulting
// to Info for unrecognized input.
func ParseLevel(s string) Level {
	switch s {
	case "0", "none", "None", "NONE":
		return None
	case "1", "warning", "Warning", "WARNING":
		return Warning
	case "3", "debug", "Debug", "DEBUG":
		return Debug
	default:
		return Info
	}
}

var (
	level   atomic.Int32
	handler atomic.Pointer[slog.Handler]
)

func init() {
	level.Store(int32(Info))
}

// SetLevel atomically installs the active log level. Safe to call
// concurrently with logging calls; per spec §5 this is the one piece of
// global state in the logging surface and it is documented thread-safe.
func SetLevel(l Level) { level.Store(int32(l)) }

// CurrentLevel returns the active log level.
func CurrentLevel() Level { return Level(level.Load()) }

// SetHandler installs a host-supplied slog.Handler; passing nil reverts to
// slog's default handler.
func SetHandler(h slog.Handler) {
	if h == nil {
		handler.Store(nil)
		return
	}
	handler.Store(&h)
}

func logger() *slog.Logger {
	if h := handler.Load(); h != nil {
		return slog.New(*h)
	}
	return slog.Default()
}

// Warningf logs at Warning level if the active level is >= Warning.
func Warningf(format string, args ...any) {
	if CurrentLevel() >= Warning {
		logger().Warn(fmt.Sprintf(format, args...))
	}
}

// Infof logs at Info level if the active level is >= Info.
func Infof(format string, args ...any) {
	if CurrentLevel() >= Info {
		logger().Info(fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level if the active level is >= Debug.
func Debugf(format string, args ...any) {
	if CurrentLevel() >= Debug {
		logger().Debug(fmt.Sprintf(format, args...))
	}
}
