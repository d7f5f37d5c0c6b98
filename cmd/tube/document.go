package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stlalpha/ansitube/internal/dataset"
	"github.com/stlalpha/ansitube/internal/pagination"
	"github.com/stlalpha/ansitube/internal/screen"
	"github.com/stlalpha/ansitube/internal/terminal"
	"github.com/stlalpha/ansitube/internal/tube"
)

// document is what a viewer shows: a data file, a text file in scroll mode,
// or generated demo rows when no path is given.
type document struct {
	path   string
	scroll bool
	demo   int
}

func (d document) name() string {
	if d.path == "" {
		return "demo"
	}
	return filepath.Base(d.path)
}

// streamed reports whether the rows are read forward only and cannot be
// reloaded in place.
func (d document) streamed() bool {
	if d.path == "" || d.scroll {
		return false
	}
	format, err := dataset.FormatOf(d.path)
	return err == nil && format == dataset.FormatNDJSON
}

// reloadable reports whether watching or scheduling reloads makes sense.
func (d document) reloadable() bool {
	return d.path != "" && !d.scroll && !d.streamed()
}

func (d document) rows() ([]pagination.Row, error) {
	if d.path == "" {
		return dataset.Demo(d.demo), nil
	}
	return dataset.Load(d.path)
}

// model builds the viewer. The returned cleanup releases open files and must
// run after the program exits.
func (d document) model(size *terminal.Size, formatter screen.TableFormatter, opts tube.Options) (tea.Model, func(), error) {
	opts.Title = "tube: " + d.name()
	noop := func() {}

	if d.scroll {
		text, err := os.ReadFile(d.path)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to read %s: %w", d.path, err)
		}
		return tube.NewScroll(string(text), size, opts), noop, nil
	}

	if d.streamed() {
		stream, err := dataset.OpenNDJSON(d.path)
		if err != nil {
			return nil, noop, err
		}
		fwd := pagination.NewForward(stream.Rows(), 1)
		cleanup := func() {
			fwd.Close()
			if err := stream.Err(); err != nil {
				log.Printf("ERROR: Reading %s: %v", d.path, err)
			}
			stream.Close()
		}
		return tube.NewTable(tube.FromForward(fwd), size, formatter, opts), cleanup, nil
	}

	rows, err := d.rows()
	if err != nil {
		return nil, noop, err
	}
	pager, err := pagination.NewPager(rows, 1)
	if err != nil {
		return nil, noop, err
	}
	if d.reloadable() {
		opts.Reload = d.rows
	}
	log.Printf("INFO: Loaded %d rows from %s", len(rows), d.name())
	return tube.NewTable(tube.FromPager(pager), size, formatter, opts), noop, nil
}

// altScreen reports whether the viewer should run on the alternate screen.
// A text viewer that closes by itself leaves its last page in the terminal.
func (d document) altScreen(overwrite bool) bool {
	return !d.scroll || overwrite
}
