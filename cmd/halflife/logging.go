package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/halflife/constants"
)

const (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName
)

// setupLogging routes the standard logger to logs/halflife.log when debug is set
// and discards it otherwise; the alternate screen has nowhere to show log lines
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
