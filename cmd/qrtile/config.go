// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pborman/getopt/v2"

	"github.com/unixdj/tile"
	"github.com/unixdj/tile/matrix"
)

// errExit is returned by parseArgs after printing help or version.
var errExit = errors.New("exit")

// A config holds settings from the config file and command line.
type config struct {
	Output    string `toml:"output"`
	Style     string `toml:"style"`
	BlockSize uint64 `toml:"block_size"`
	Sheet     string `toml:"sheet"`
	Encoder   string `toml:"encoder"`
	Restamp   bool   `toml:"restamp"`
	ShiftJIS  bool   `toml:"shift_jis"`
	Verbose   bool   `toml:"verbose"`

	blockSet bool   // block size given explicitly
	content  string // text to encode
}

func defaultConfig() config {
	return config{
		Output:    "out.png",
		Style:     tile.Flat.String(),
		BlockSize: tile.DefaultBlockSize,
		Encoder:   matrix.RSC.String(),
	}
}

const maxBlockSize = 1024

// newSet returns a getopt set parsing into c and file, and the block
// size option.
func newSet(c *config, file *string) (*getopt.Set, getopt.Option) {
	s := getopt.New()
	s.SetParameters("content ...")
	s.FlagLong(file, "config", 'c', "TOML file with defaults "+
		"for the long options below", "file")
	s.FlagLong(&c.Output, "output", 'o', `output file, or "-" for `+
		`standard output; format from suffix, one of: `+
		strings.Join(tile.Formats, ", ")+`; if standard output `+
		`is a TTY, a text preview is printed instead`, "file")
	s.FlagLong(&c.Style, "style", 's', "tile style, one of: "+
		strings.Join(tile.Styles(), ", "), "style")
	bs := s.FlagLong(&c.BlockSize, "block-size", 'b', "block size in pixels; "+
		"ignored by style bounce, which uses the sheet's frame size",
		"pixels")
	s.FlagLong(&c.Sheet, "sheet", 'S', "sprite sheet for style bounce "+
		"[built in]", "file")
	s.FlagLong(&c.Encoder, "encoder", 'e', "QR encoder, one of: "+
		strings.Join(matrix.Backends(), ", "), "name")
	s.FlagLong(&c.Restamp, "restamp", 'P',
		"stamp finder and alignment patterns for style flat too")
	s.FlagLong(&c.ShiftJIS, "shift-jis", 'k', "Shift JIS input")
	s.FlagLong(&c.Verbose, "verbose", 'v', "log debugging information")
	return s, bs
}

// parseArgs parses the command line and the config file it names.
// Options given on the command line override the config file.
func parseArgs(args []string, stdout io.Writer) (*config, error) {
	c := defaultConfig()
	var file string
	s, bs := newSet(&c, &file)
	help := s.BoolLong("help", 'h', "show this help")
	version := s.BoolLong("version", 'V', "print version and copyright")
	if err := s.Getopt(args, nil); err != nil {
		return nil, err
	}
	if *help {
		fmt.Fprintln(stdout, "Styled QR code generator")
		s.PrintUsage(stdout)
		return nil, errExit
	}
	if *version {
		fmt.Fprintln(stdout, "qrtile version 0.1.0\n"+
			"Copyright (c) 2025 Vadim Vygonets")
		return nil, errExit
	}

	if file != "" {
		fc := defaultConfig()
		md, err := toml.DecodeFile(file, &fc)
		if err != nil {
			return nil, err
		}
		if u := md.Undecoded(); len(u) != 0 {
			return nil, fmt.Errorf("%s: unknown key %q",
				file, u[0].String())
		}
		// Reparse the command line over the file's settings.
		s, bs = newSet(&fc, new(string))
		s.BoolLong("help", 'h', "")
		s.BoolLong("version", 'V', "")
		if err := s.Getopt(args, nil); err != nil {
			return nil, err
		}
		c = fc
		c.blockSet = md.IsDefined("block_size")
	}
	if bs.Seen() {
		c.blockSet = true
	}

	if c.BlockSize < 1 || c.BlockSize > maxBlockSize {
		return nil, fmt.Errorf("block size %d out of range 1-%d",
			c.BlockSize, maxBlockSize)
	}
	if c.content = strings.Join(s.Args(), " "); c.content == "" {
		return nil, errors.New("no content given")
	}
	return &c, nil
}
