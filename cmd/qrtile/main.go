// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qrtile encodes text as a QR code and draws it in one of
// several tile styles.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/encoding/japanese"

	"github.com/unixdj/tile"
	"github.com/unixdj/tile/matrix"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "qrtile",
		Level:  level,
	})
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// run encodes c.content, renders it and writes the result to
// c.Output, or to stdout if c.Output is "-".
func run(c *config, l *log.Logger, stdout *os.File) error {
	text := c.content
	if c.ShiftJIS {
		var err error
		text, err = japanese.ShiftJIS.NewDecoder().String(text)
		if err != nil {
			return fmt.Errorf("shift jis input: %w", err)
		}
	}
	backend, err := matrix.ParseBackend(c.Encoder)
	if err != nil {
		return err
	}
	style, err := tile.ParseStyle(c.Style)
	if err != nil {
		return err
	}

	m, err := matrix.Encode(text, backend)
	if err != nil {
		return err
	}
	l.Debug("encoded", "encoder", backend, "modules", m.Size(),
		"version", tile.Version(m.Size()))

	opts := tile.Options{
		Style:     style,
		BlockSize: int(c.BlockSize),
		Restamp:   c.Restamp,
		Logger:    l,
	}
	if style == tile.Bouncy {
		if opts.Sheet, err = loadSheet(c.Sheet); err != nil {
			return err
		}
		if bs := opts.Sheet.BlockSize(); c.blockSet &&
			int(c.BlockSize) != bs {
			l.Warn("block size ignored by style", "style", style,
				"requested", c.BlockSize, "used", bs)
		}
	}

	if c.Output == "-" && isTerminal(stdout) {
		l.Info("standard output is a terminal, printing preview")
		_, err := io.WriteString(stdout, m.String())
		return err
	}
	img, err := tile.Render(m, opts)
	if err != nil {
		return err
	}
	if c.Output == "-" {
		w := bufio.NewWriter(stdout)
		if err := tile.Encode(w, img, "out.png"); err != nil {
			return err
		}
		return w.Flush()
	}
	if err := tile.WriteFile(c.Output, img); err != nil {
		return err
	}
	l.Info("wrote", "file", c.Output, "width", img.Rect.Dx(),
		"height", img.Rect.Dy())
	return nil
}

func loadSheet(name string) (*tile.Sheet, error) {
	if name == "" {
		return tile.DefaultSheet()
	}
	return tile.LoadSheet(name)
}

func main() {
	l := newLogger(os.Stderr, log.InfoLevel)
	c, err := parseArgs(os.Args, os.Stdout)
	if errors.Is(err, errExit) {
		os.Exit(0)
	} else if err != nil {
		l.Error(err)
		fmt.Fprintln(os.Stderr, `Try "qrtile -h" for help.`)
		os.Exit(2)
	}
	if c.Verbose {
		l.SetLevel(log.DebugLevel)
	}
	if err := run(c, l, os.Stdout); err != nil {
		l.Fatal(err)
	}
}
