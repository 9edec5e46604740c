package progrock

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

// printer converts progrock status updates into plain logger lines. Updates
// are incremental and may repeat a vertex, so transitions are logged once.
type printer struct {
	log ports.Logger

	mu      sync.Mutex
	names   map[string]string
	started map[string]bool
	done    map[string]bool
}

func newPrinter(log ports.Logger) *printer {
	return &printer{
		log:     log,
		names:   make(map[string]string),
		started: make(map[string]bool),
		done:    make(map[string]bool),
	}
}

// WriteStatus logs vertex transitions and forwarded vertex output.
func (p *printer) WriteStatus(status *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range status.Vertexes {
		p.names[v.Id] = v.Name

		if v.Started != nil && !p.started[v.Id] {
			p.started[v.Id] = true
			p.log.Info(fmt.Sprintf("render: %s", v.Name))
		}

		if v.Completed == nil || p.done[v.Id] {
			continue
		}
		p.done[v.Id] = true
		switch {
		case v.Error != nil:
			p.log.Error(zerr.With(zerr.New(*v.Error), "page", v.Name))
		case v.Cached:
			p.log.Info(fmt.Sprintf("cached: %s", v.Name))
		default:
			p.log.Info(fmt.Sprintf("done: %s", v.Name))
		}
	}

	for _, l := range status.Logs {
		msg := strings.TrimRight(string(l.Data), "\n")
		if msg == "" {
			continue
		}
		if name, ok := p.names[l.Vertex]; ok {
			msg = fmt.Sprintf("%s: %s", name, msg)
		}
		p.log.Info(msg)
	}

	return nil
}

// Close implements the optional closer looked up by Tracer.Close.
func (p *printer) Close() error {
	return nil
}
