package session

// Notifier receives a fresh immutable snapshot after every successful
// mutation, plus the derived game events. Implementations must not call
// back into the session synchronously.
type Notifier interface {
	GameStateChanged(snap *Snapshot)
	TrickResolved(gameID, winnerID, winnerName string)
	RoundCompleted(gameID string, roundNumber int, scores map[string]int)
	GameFinished(snap *Snapshot)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) GameStateChanged(*Snapshot)                 {}
func (NopNotifier) TrickResolved(string, string, string)       {}
func (NopNotifier) RoundCompleted(string, int, map[string]int) {}
func (NopNotifier) GameFinished(*Snapshot)                     {}
