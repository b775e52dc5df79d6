// Copyright (C) 2022-2026, VigilantDoomer
//
// This file is part of VigilantEdit program.
//
// VigilantEdit is free software: you can redistribute it
// and/or modify it under the terms of GNU General Public License
// as published by the Free Software Foundation, either version 2 of
// the License, or (at your option) any later version.
//
// VigilantEdit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VigilantEdit.  If not, see <https://www.gnu.org/licenses/>.

// Central log (stdout/stderr) of the program
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/ttacon/chalk"
)

type MyLogger struct {
	// Mutex is used to order writes to stdout and stderr, as well as Sync call
	mu sync.Mutex
}

// Logs specific to one level being built. Their output is not forwarded to
// stdout but buffered until merged into the main log, so that levels built
// in parallel do not interleave their lines
type MiniLogger struct {
	buf  bytes.Buffer
	errs bytes.Buffer
}

func CreateLogger() *MyLogger {
	return new(MyLogger)
}

var Log = CreateLogger()

var syslog = log.New(os.Stdout, "", 0)
var errlog = log.New(os.Stderr, "", 0)

// Your generic printf to let user see things
func (log *MyLogger) Printf(s string, a ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	syslog.Printf(s, a...)
}

// As generic as printf, but writes to stderr in red instead of stdout
// Does NOT interrupt execution of the program
func (log *MyLogger) Error(s string, a ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	errlog.Print(chalk.Red.Color(fmt.Sprintf(s, a...)))
}

// Things only curious users want to see
func (log *MyLogger) Verbose(verbosityLevel int, s string, a ...interface{}) {
	if verbosityLevel <= config.VerbosityLevel {
		log.mu.Lock()
		defer log.mu.Unlock()
		syslog.Printf(s, a...)
	}
}

// Merge writes out everything mlog has buffered, preceded by preface
func (log *MyLogger) Merge(mlog *MiniLogger, preface string) {
	if mlog == nil {
		return
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	if len(preface) > 0 {
		syslog.Print(chalk.Cyan.Color(preface))
	}
	if content := mlog.buf.String(); len(content) > 0 {
		syslog.Print(content)
	}
	if errs := mlog.errs.String(); len(errs) > 0 {
		errlog.Print(chalk.Red.Color(errs))
	}
}

func (mlog *MiniLogger) Printf(s string, a ...interface{}) {
	if mlog == nil {
		Log.Printf(s, a...)
		return
	}
	mlog.buf.WriteString(fmt.Sprintf(s, a...))
}

func (mlog *MiniLogger) Verbose(verbosityLevel int, s string, a ...interface{}) {
	if mlog == nil {
		Log.Verbose(verbosityLevel, s, a...)
		return
	}
	if verbosityLevel <= config.VerbosityLevel {
		mlog.buf.WriteString(fmt.Sprintf(s, a...))
	}
}

func (mlog *MiniLogger) Error(s string, a ...interface{}) {
	if mlog == nil {
		Log.Error(s, a...)
		return
	}
	mlog.errs.WriteString(fmt.Sprintf(s, a...))
}

func CreateMiniLogger() *MiniLogger {
	return new(MiniLogger)
}
