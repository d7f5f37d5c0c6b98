// Command tube shows tabular data and text files one screen at a time, in
// the local terminal or to clients connecting over SSH.
//
//	tube [flags] [file]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stlalpha/ansitube/internal/ansi"
	"github.com/stlalpha/ansitube/internal/config"
	"github.com/stlalpha/ansitube/internal/logging"
	"github.com/stlalpha/ansitube/internal/table"
	"github.com/stlalpha/ansitube/internal/terminal"
	"github.com/stlalpha/ansitube/internal/tube"
)

var (
	configDir  = flag.String("config", ".", "directory holding tube.json and .env")
	debugFlag  = flag.Bool("debug", false, "enable debug logging")
	scrollFlag = flag.Bool("scroll", false, "show the file as text, one screen at a time")
	sshFlag    = flag.Bool("ssh", false, "serve the viewer over SSH instead of the local terminal")
	demoRows   = flag.Int("demo", 200, "number of demo rows shown when no file is given")
	outputMode = flag.String("output-mode", "", "terminal output mode: auto, utf8, cp437 (overrides the config)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *outputMode != "" {
		cfg.OutputMode = *outputMode
	}
	logging.Enable(cfg.Debug)

	doc := document{path: flag.Arg(0), scroll: *scrollFlag, demo: *demoRows}
	if doc.scroll && doc.path == "" {
		log.Fatalf("FATAL: -scroll needs a file")
	}

	if *sshFlag || cfg.SSHEnabled {
		err = runSSH(cfg, doc)
	} else {
		err = runLocal(cfg, doc)
	}
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func runLocal(cfg config.Config, doc document) error {
	if err := ansi.EnableVirtualTerminal(); err != nil {
		log.Printf("WARN: Cannot enable ANSI processing: %v", err)
	}

	size := terminal.NewSize(cfg.DefaultWidth, cfg.DefaultHeight)
	if fd := int(os.Stdout.Fd()); terminal.IsTerminal(fd) {
		size = terminal.FromFD(fd)
	}

	// The viewer owns the screen from here on.
	logFile, err := tea.LogToFile(cfg.LogFile, "tube")
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}
	defer logFile.Close()

	opts := tube.Options{NoColor: cfg.NoColor, Overwrite: cfg.ScrollOverwrite}
	model, cleanup, err := doc.model(size, table.NewFormatter(nil), opts)
	if err != nil {
		return err
	}
	defer cleanup()

	mode := terminal.ResolveOutputMode(terminal.ParseOutputMode(cfg.OutputMode), os.Getenv("TERM"))
	programOpts := []tea.ProgramOption{tea.WithOutput(terminal.NewWriter(os.Stdout, mode))}
	if doc.altScreen(cfg.ScrollOverwrite) {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	log.Printf("INFO: Showing %s (%dx%d, %s output)", doc.name(), size.Width(), size.Height(), mode)

	program := tea.NewProgram(model, programOpts...)
	stop := startReload(cfg, doc, program.Send)
	defer stop()

	_, err = program.Run()
	return err
}
