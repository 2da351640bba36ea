// Package sanitize prepares encoded text for strict decoding by running a
// priority-ordered set of in-place cleanup steps over a byte buffer.
package sanitize

import (
	"fmt"
	"log"
	"reflect"
	"runtime"
	"sort"
	"sync"
)

// Buffer holds symbols being cleaned. Only Data[:Len] is meaningful; steps
// compact in place and shrink Len rather than reslicing Data.
type Buffer struct {
	Data []byte
	Len  int
}

// Bytes returns the valid prefix of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.Data[:b.Len]
}

// Step rewrites a buffer in place. A non-nil error aborts the pipeline.
type Step func(buf *Buffer) error

// StepInfo stores a registered step and its priority
type StepInfo struct {
	Name     string // Name of the step function
	Step     Step
	Priority int64 // Lower values run first, like Unix nice
}

// Pipeline runs registered steps in priority order
type Pipeline struct {
	mu    sync.RWMutex
	steps []StepInfo
}

// NewPipeline creates an empty pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		steps: make([]StepInfo, 0),
	}
}

// Default returns a pipeline that strips ASCII whitespace.
func Default() *Pipeline {
	p := NewPipeline()
	p.Register(StripWhitespace)
	return p
}

// Register adds a step with default priority (0)
func (p *Pipeline) Register(step Step) {
	p.RegisterWithPriority(step, 0)
}

// RegisterWithPriority adds a step with the specified priority.
// Steps with equal priority run in registration order.
func (p *Pipeline) RegisterWithPriority(step Step, priority int64) {
	name := runtime.FuncForPC(reflect.ValueOf(step).Pointer()).Name()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.steps = append(p.steps, StepInfo{
		Name:     name,
		Step:     step,
		Priority: priority,
	})
}

// Run executes the steps against buf, stopping at the first failure.
// A panicking step is reported as an error.
func (p *Pipeline) Run(buf *Buffer) error {
	if buf.Len < 0 || buf.Len > len(buf.Data) {
		return fmt.Errorf("sanitize: buffer length %d out of range [0, %d]", buf.Len, len(buf.Data))
	}

	p.mu.RLock()
	steps := make([]StepInfo, len(p.steps))
	copy(steps, p.steps)
	p.mu.RUnlock()

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Priority < steps[j].Priority
	})

	for _, info := range steps {
		if err := runStep(info, buf); err != nil {
			log.Printf("ERROR in sanitize step %s: %v", info.Name, err)
			return err
		}
		if buf.Len < 0 || buf.Len > len(buf.Data) {
			return fmt.Errorf("sanitize: step %s left length %d out of range", info.Name, buf.Len)
		}
	}
	return nil
}

func runStep(info StepInfo, buf *Buffer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in sanitize step %s: %v", info.Name, r)
			err = fmt.Errorf("panic in sanitize step %s: %v", info.Name, r)
		}
	}()
	return info.Step(buf)
}

// Clear removes all steps
func (p *Pipeline) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.steps = make([]StepInfo, 0)
}

// Count returns the number of registered steps
func (p *Pipeline) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.steps)
}

// Clean copies text, runs p over the copy and returns the buffer together
// with its valid length.
func (p *Pipeline) Clean(text string) ([]byte, int, error) {
	buf := &Buffer{Data: []byte(text), Len: len(text)}
	if err := p.Run(buf); err != nil {
		return nil, 0, err
	}
	return buf.Data, buf.Len, nil
}

var defaultPipeline = Default()

// Clean runs the default pipeline over a copy of text.
func Clean(text string) ([]byte, int, error) {
	return defaultPipeline.Clean(text)
}
