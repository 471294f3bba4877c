// internal/player/mock.go
package player

import "time"

// Mock is a test double for Engine.
type Mock struct {
	state      State
	position   time.Duration
	finished   bool
	startErr   error
	startCalls []string
	stopCalls  int
	pauseCalls int
}

// NewMock creates a new stopped mock engine.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) Start(path string) error {
	m.startCalls = append(m.startCalls, path)
	m.position = 0
	m.finished = false
	if m.startErr != nil {
		m.state = Stopped
		return m.startErr
	}
	m.state = Playing
	return nil
}

func (m *Mock) Stop() {
	m.stopCalls++
	m.state = Stopped
	m.position = 0
	m.finished = false
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.pauseCalls++
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Finished() bool { return m.state != Stopped && m.finished }

func (m *Mock) State() State { return m.state }

// Test helpers

func (m *Mock) SetStartError(err error) { m.startErr = err }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished marks the current track as played to its end.
func (m *Mock) SimulateFinished() { m.finished = true }

func (m *Mock) StartCalls() []string { return m.startCalls }

// LastStart returns the most recently started path, or "".
func (m *Mock) LastStart() string {
	if len(m.startCalls) == 0 {
		return ""
	}
	return m.startCalls[len(m.startCalls)-1]
}

func (m *Mock) StopCalls() int { return m.stopCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }
