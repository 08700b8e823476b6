// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package schemaparse parses the line-oriented struct schema format:
//
//	struct command {
//		uint16_t request_id;	/* return identifier */
//		uint8_t  command;
//		uint16_t length;
//	};
//
// Each struct-open, field and struct-close shape must be written on its own
// line. Schema files are usually C headers, therefore blank lines, comments
// and preprocessor directives outside of structs are ignored.
package schemaparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"ariga.io/structwire/schema"
)

type (
	// UnterminatedStructError is returned when the input ends while a
	// struct definition is still open. It aborts parsing.
	UnterminatedStructError struct {
		Struct string
		Pos    *schema.Pos // Position of the struct opening line.
	}

	// UnrecognizedLineError is reported for lines that do not match any
	// of the known shapes. The line is skipped.
	UnrecognizedLineError struct {
		Line string
		Pos  *schema.Pos
	}

	// UnknownFieldTypeError is reported for field lines with an unknown
	// type token. The field is dropped from its struct.
	UnknownFieldTypeError struct {
		Struct, Field, Type string
		Pos                 *schema.Pos
	}
)

func (e *UnterminatedStructError) Error() string {
	return fmt.Sprintf("schemaparse: %s: struct %q is not terminated", e.Pos, e.Struct)
}

func (e *UnrecognizedLineError) Error() string {
	return fmt.Sprintf("schemaparse: %s: unrecognized line %q", e.Pos, e.Line)
}

func (e *UnknownFieldTypeError) Error() string {
	return fmt.Sprintf("schemaparse: %s: unknown type %q for field %s.%s", e.Pos, e.Type, e.Struct, e.Field)
}

var (
	reOpen  = regexp.MustCompile(`^struct\s+([a-z_][a-z0-9_]*)\s*\{$`)
	reClose = regexp.MustCompile(`^}\s*;$`)
	reField = regexp.MustCompile(`^([A-Za-z0-9_]+(?:\s*\*\s*|\s*\[\s*[0-9]+\s*\]\s*|\s+))([a-z_][a-z0-9_]*)\s*;$`)
)

type (
	// Option configures the parser.
	Option func(*parser)

	parser struct {
		filename string
		reporter schema.Reporter
		line     int
		comment  bool // inside a multi-line block comment
		cur      *schema.Struct
		out      *schema.Schema
	}
)

// WithFilename sets the filename used in diagnostics positions.
func WithFilename(name string) Option {
	return func(p *parser) {
		p.filename = name
	}
}

// WithReporter sets the reporter that receives non-fatal diagnostics.
// By default, they are discarded.
func WithReporter(r schema.Reporter) Option {
	return func(p *parser) {
		p.reporter = r
	}
}

// ParseFile parses the schema file at the given path.
func ParseFile(path string, opts ...Option) (*schema.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, append([]Option{WithFilename(path)}, opts...)...)
}

// Parse reads a schema document from r. Unknown field types and unrecognized
// lines are reported to the configured reporter and skipped; only an
// unterminated struct fails the parsing.
func Parse(r io.Reader, opts ...Option) (*schema.Schema, error) {
	p := &parser{reporter: schema.NopReporter, out: &schema.Schema{}}
	for _, opt := range opts {
		opt(p)
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		p.parseLine(strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("schemaparse: reading input: %w", err)
	}
	if p.cur != nil {
		return nil, &UnterminatedStructError{Struct: p.cur.Name, Pos: p.cur.Pos}
	}
	return p.out, nil
}

func (p *parser) pos() *schema.Pos {
	return &schema.Pos{Filename: p.filename, Line: p.line}
}

func (p *parser) parseLine(raw string) {
	line := p.leading(raw)
	switch {
	case line == "", strings.HasPrefix(line, "//"):
		return
	case strings.HasPrefix(line, "#") && p.cur == nil:
		return
	}
	if p.cur == nil {
		m := reOpen.FindStringSubmatch(line)
		if m == nil {
			p.reporter.Report(&UnrecognizedLineError{Line: raw, Pos: p.pos()})
			return
		}
		p.cur = &schema.Struct{Name: m[1], Pos: p.pos()}
		return
	}
	stmt, ok := p.stripComment(line)
	switch {
	case !ok:
		p.reporter.Report(&UnrecognizedLineError{Line: raw, Pos: p.pos()})
	case reClose.MatchString(stmt):
		p.out.Structs = append(p.out.Structs, p.cur)
		p.cur = nil
	case reField.MatchString(stmt):
		m := reField.FindStringSubmatch(stmt)
		token, name := strings.TrimSpace(m[1]), m[2]
		t, err := schema.ParseType(token)
		if err != nil {
			p.reporter.Report(&UnknownFieldTypeError{Struct: p.cur.Name, Field: name, Type: token, Pos: p.pos()})
			return
		}
		p.cur.Fields = append(p.cur.Fields, &schema.Field{Name: name, Type: t, Pos: p.pos()})
	default:
		p.reporter.Report(&UnrecognizedLineError{Line: raw, Pos: p.pos()})
	}
}

// leading removes the block comments that open the line, including the
// end of a comment started on a previous line, and returns what follows.
func (p *parser) leading(line string) string {
	for {
		if p.comment {
			i := strings.Index(line, "*/")
			if i == -1 {
				return ""
			}
			p.comment = false
			line = strings.TrimSpace(line[i+2:])
		}
		if !strings.HasPrefix(line, "/*") {
			return line
		}
		line = line[2:]
		p.comment = true
	}
}

// stripComment removes a trailing comment written after the terminating
// semicolon of a statement. It returns false if anything else follows it.
// A trailing block comment left open continues on the next lines.
func (p *parser) stripComment(line string) (string, bool) {
	i := strings.IndexByte(line, ';')
	if i == -1 {
		return line, true
	}
	rest := strings.TrimSpace(line[i+1:])
	switch {
	case rest == "", strings.HasPrefix(rest, "//"):
	case strings.HasPrefix(rest, "/*") && !strings.Contains(rest[2:], "*/"):
		p.comment = true
	case strings.HasPrefix(rest, "/*") && strings.HasSuffix(rest, "*/"):
	default:
		return line, false
	}
	return strings.TrimSpace(line[:i+1]), true
}
