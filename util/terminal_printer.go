package util

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gosuri/uilive"
)

type TerminalPrinter struct {
	outputs   []*ProgressOutput
	frequency time.Duration
	doneCh    chan struct{}

	writer  *uilive.Writer
	writers []io.Writer
}

func NewTerminalPrinter(frequency time.Duration) *TerminalPrinter {
	return &TerminalPrinter{
		outputs:   make([]*ProgressOutput, 0),
		frequency: frequency,
		doneCh:    make(chan struct{}),

		writer:  uilive.New(),
		writers: make([]io.Writer, 0),
	}
}

// NewOutput adds a line to the live display and returns a handle to update it.
func (t *TerminalPrinter) NewOutput() *ProgressOutput {
	out := NewProgressOutput()
	t.outputs = append(t.outputs, out)
	t.writers = append(t.writers, t.writer.Newline())
	return out
}

func (t *TerminalPrinter) Start(ctx context.Context) {
	t.writer.Start()
	go func() {
		for {
			select {
			case <-t.doneCh:
				t.print()
				t.writer.Stop()
				return
			case <-ctx.Done():
				t.writer.Stop()
				return
			case <-time.After(t.frequency):
				t.print()
			}
		}
	}()
}

func (t *TerminalPrinter) Stop() {
	close(t.doneCh)
}

func (t *TerminalPrinter) print() {
	for i, output := range t.outputs {
		fmt.Fprint(t.writers[i], output.Get()+"\n")
	}
	t.writer.Flush()
}

// ProgressOutput holds the current printable state of one experiment line.
type ProgressOutput struct {
	mu        *sync.Mutex
	printable string
}

func NewProgressOutput() *ProgressOutput {
	return &ProgressOutput{
		mu:        new(sync.Mutex),
		printable: "",
	}
}

func (p *ProgressOutput) Set(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printable = s
}

func (p *ProgressOutput) Get() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.printable
}
