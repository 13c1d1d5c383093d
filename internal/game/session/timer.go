package session

import (
	"time"

	"github.com/Sagarjari01/judgment/internal/logger"
)

// startResolveTimerLocked schedules the end of the resolution window. A
// zero delay still goes through the timer so the cleared trick is never
// observable in the same mutation that resolved it.
func (s *GameSession) startResolveTimerLocked() {
	s.resolveTimer = time.AfterFunc(s.resolveDelay, s.finishResolution)
}

// deferLocked queues an action to run when the resolution window closes.
// Queued actions are validated at apply time; failures are logged, not
// returned, since the submitter has already been answered.
func (s *GameSession) deferLocked(fn deferredAction) {
	s.deferred = append(s.deferred, fn)
}

func (s *GameSession) drainDeferredLocked() {
	pending := s.deferred
	s.deferred = nil
	for _, fn := range pending {
		if err := fn(); err != nil {
			logger.LogError("game %s: deferred action rejected: %v", s.id, err)
		}
	}
}

// stop cancels the pending resolution timer, if any. Used when a game is
// removed from the registry.
func (s *GameSession) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolveTimer != nil {
		s.resolveTimer.Stop()
		s.resolveTimer = nil
	}
	s.resolving = false
	s.deferred = nil
}
