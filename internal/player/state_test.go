package player

import (
	"errors"
	"testing"
	"time"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("State.IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestMock_StateTransitions validates the engine contract using the Mock.
func TestMock_StateTransitions(t *testing.T) {
	t.Run("Stopped to Playing via Start", func(t *testing.T) {
		m := NewMock()
		if m.State() != Stopped {
			t.Fatalf("initial state = %v, want Stopped", m.State())
		}
		if err := m.Start("/test.mp3"); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		if m.State() != Playing {
			t.Errorf("state after Start = %v, want Playing", m.State())
		}
	})

	t.Run("Pause and Resume", func(t *testing.T) {
		m := NewMock()
		_ = m.Start("/test.mp3")
		m.Pause()
		if m.State() != Paused {
			t.Errorf("state after Pause = %v, want Paused", m.State())
		}
		m.Resume()
		if m.State() != Playing {
			t.Errorf("state after Resume = %v, want Playing", m.State())
		}
	})

	t.Run("Pause when stopped is ignored", func(t *testing.T) {
		m := NewMock()
		m.Pause()
		if m.State() != Stopped || m.PauseCalls() != 0 {
			t.Errorf("state = %v, pauses = %d; want Stopped, 0", m.State(), m.PauseCalls())
		}
	})

	t.Run("Start error leaves engine stopped", func(t *testing.T) {
		m := NewMock()
		m.SetStartError(errors.New("decode failed"))
		if err := m.Start("/bad.mp3"); err == nil {
			t.Fatal("expected error")
		}
		if m.State() != Stopped {
			t.Errorf("state = %v, want Stopped", m.State())
		}
	})

	t.Run("Finished resets on Start and Stop", func(t *testing.T) {
		m := NewMock()
		_ = m.Start("/a.mp3")
		m.SetPosition(time.Minute)
		m.SimulateFinished()
		if !m.Finished() {
			t.Fatal("Finished() = false after SimulateFinished")
		}
		_ = m.Start("/b.mp3")
		if m.Finished() || m.Position() != 0 {
			t.Errorf("after Start: Finished=%v Position=%v", m.Finished(), m.Position())
		}
		m.SimulateFinished()
		m.Stop()
		if m.Finished() {
			t.Error("Finished() = true after Stop")
		}
		if m.LastStart() != "/b.mp3" || m.StopCalls() != 1 {
			t.Errorf("LastStart=%q StopCalls=%d", m.LastStart(), m.StopCalls())
		}
	})
}
