package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stlalpha/ansitube/internal/config"
	"github.com/stlalpha/ansitube/internal/reload"
	"github.com/stlalpha/ansitube/internal/tube"
)

// startReload wires the file watcher and the refresh schedule to send. The
// returned function stops both.
func startReload(cfg config.Config, doc document, send func(tea.Msg)) func() {
	if !doc.reloadable() {
		return func() {}
	}
	notify := func(reason reload.Reason) {
		log.Printf("INFO: Reloading %s (%s)", doc.name(), reason)
		send(tube.ReloadRequestMsg{Reason: reason})
	}

	var stops []func()
	if cfg.WatchDataFile {
		w, err := reload.Watch(doc.path, reload.DefaultDebounce, notify)
		if err != nil {
			log.Printf("WARN: Not watching %s: %v", doc.path, err)
		} else {
			stops = append(stops, w.Stop)
		}
	}
	if cfg.RefreshSchedule != "" {
		s, err := reload.NewSchedule(cfg.RefreshSchedule, notify)
		if err != nil {
			log.Printf("WARN: %v", err)
		} else {
			s.Start()
			stops = append(stops, s.Stop)
		}
	}

	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}
