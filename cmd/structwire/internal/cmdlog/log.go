// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package cmdlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ariga.io/structwire/plan"
	"ariga.io/structwire/schema"
	"ariga.io/structwire/schema/schemaparse"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type (
	// Log configures the diagnostics logger.
	Log struct {
		// Level is one of debug, info, warn or error. Defaults to info.
		Level string `hcl:"level,optional"`
		// Format is either console or json. Defaults to console.
		Format string `hcl:"format,optional"`
		// Outputs lists the log destinations: stderr, stdout or file paths.
		// Defaults to stderr.
		Outputs []string `hcl:"outputs,optional"`
		// Rotate configures the rotation of file outputs.
		Rotate *Rotate `hcl:"rotate,block"`
	}

	// Rotate configures the rotation of log files.
	Rotate struct {
		MaxSize    int  `hcl:"max_size,optional"` // Megabytes.
		MaxBackups int  `hcl:"max_backups,optional"`
		MaxAge     int  `hcl:"max_age,optional"` // Days.
		Compress   bool `hcl:"compress,optional"`
	}
)

// NewLogger builds the logger described by the configuration. Outputs named
// stdout and stderr are mapped to w and errw.
func NewLogger(c *Log, w, errw io.Writer) (*zap.Logger, error) {
	if c == nil {
		c = &Log{}
	}
	level := zap.NewAtomicLevel()
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, fmt.Errorf("cmdlog: invalid log level %q", c.Level)
		}
	}
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = ""
	var encoder zapcore.Encoder
	switch strings.ToLower(c.Format) {
	case "", "console":
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(enc)
	case "json":
		encoder = zapcore.NewJSONEncoder(enc)
	default:
		return nil, fmt.Errorf("cmdlog: invalid log format %q", c.Format)
	}
	outs := c.Outputs
	if len(outs) == 0 {
		outs = []string{"stderr"}
	}
	cores := make([]zapcore.Core, 0, len(outs))
	for _, out := range outs {
		var ws zapcore.WriteSyncer
		switch out {
		case "stdout":
			ws = zapcore.AddSync(w)
		case "stderr":
			ws = zapcore.AddSync(errw)
		default:
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				return nil, fmt.Errorf("cmdlog: create log directory: %w", err)
			}
			l := &lumberjack.Logger{Filename: out}
			if r := c.Rotate; r != nil {
				l.MaxSize, l.MaxBackups, l.MaxAge, l.Compress = r.MaxSize, r.MaxBackups, r.MaxAge, r.Compress
			}
			ws = zapcore.AddSync(l)
		}
		cores = append(cores, zapcore.NewCore(encoder, ws, level))
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}

// Reporter logs schema diagnostics and counts them.
type Reporter struct {
	log *zap.Logger
	n   int
}

// NewReporter returns a Reporter writing to the given logger.
func NewReporter(log *zap.Logger) *Reporter {
	return &Reporter{log: log}
}

var _ schema.Reporter = (*Reporter)(nil)

// Report implements schema.Reporter.
func (r *Reporter) Report(err error) {
	r.n++
	r.log.Warn(message(err), append(fields(err), zap.Error(err))...)
}

// Count returns the number of reported diagnostics.
func (r *Reporter) Count() int {
	return r.n
}

func message(err error) string {
	var (
		pos  *schema.Pos
		line *schemaparse.UnrecognizedLineError
		typ  *schemaparse.UnknownFieldTypeError
	)
	switch {
	case errors.As(err, &line):
		pos = line.Pos
	case errors.As(err, &typ):
		pos = typ.Pos
	default:
		return "struct excluded"
	}
	if pos == nil {
		return "schema diagnostic"
	}
	return "schema diagnostic at " + pos.String()
}

func fields(err error) []zap.Field {
	var (
		typ   *schemaparse.UnknownFieldTypeError
		multi *plan.MultipleVariableFieldsError
		miss  *plan.MissingLengthFieldError
		dup   *plan.DuplicateFieldError
	)
	switch {
	case errors.As(err, &typ):
		return []zap.Field{zap.String("struct", typ.Struct), zap.String("field", typ.Field), zap.String("type", typ.Type)}
	case errors.As(err, &multi):
		return []zap.Field{zap.String("struct", multi.Struct), zap.Strings("fields", multi.Fields)}
	case errors.As(err, &miss):
		return []zap.Field{zap.String("struct", miss.Struct), zap.String("field", miss.Field)}
	case errors.As(err, &dup):
		return []zap.Field{zap.String("struct", dup.Struct), zap.String("field", dup.Field)}
	default:
		return nil
	}
}
