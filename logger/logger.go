// Copyright 2025 Sonic Labs
// This file is part of the Sonic probability library
//
// The probability library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The probability library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the probability library. If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"os"

	"github.com/op/go-logging"
)

const defaultLogFormat = "%{time:15:04:05.000} %{module} %{level:.4s} %{message}"

// Logger is the leveled logger used across the module.
type Logger interface {
	Critical(args ...any)
	Criticalf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Warning(args ...any)
	Warningf(format string, args ...any)
	Notice(args ...any)
	Noticef(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Debug(args ...any)
	Debugf(format string, args ...any)
	IsEnabledFor(level logging.Level) bool
}

// NewLogger creates a logger for the given module writing to stderr.
// An unknown level string falls back to INFO.
func NewLogger(level string, module string) Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	log.SetBackend(leveled)
	// IsEnabledFor consults the package level backend
	logging.SetLevel(lvl, module)

	return log
}
