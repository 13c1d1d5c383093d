//go:build !production

package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/Sagarjari01/judgment/internal/game/session"
)

// MockNotifier 实现 session.Notifier 的 testify mock
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) GameStateChanged(snap *session.Snapshot) {
	m.Called(snap)
}

func (m *MockNotifier) TrickResolved(gameID, winnerID, winnerName string) {
	m.Called(gameID, winnerID, winnerName)
}

func (m *MockNotifier) RoundCompleted(gameID string, roundNumber int, scores map[string]int) {
	m.Called(gameID, roundNumber, scores)
}

func (m *MockNotifier) GameFinished(snap *session.Snapshot) {
	m.Called(snap)
}

// RecordingNotifier 简单的记录型 notifier，不使用 testify
// （用于只需要回放事件的测试）。线程安全：结算窗口从定时器协程发事件。
type RecordingNotifier struct {
	mu sync.Mutex

	Snapshots []*session.Snapshot
	Tricks    []TrickEvent
	Rounds    []RoundEvent
	Finished  []*session.Snapshot
}

type TrickEvent struct {
	GameID     string
	WinnerID   string
	WinnerName string
}

type RoundEvent struct {
	GameID      string
	RoundNumber int
	Scores      map[string]int
}

func (r *RecordingNotifier) GameStateChanged(snap *session.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Snapshots = append(r.Snapshots, snap)
}

func (r *RecordingNotifier) TrickResolved(gameID, winnerID, winnerName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Tricks = append(r.Tricks, TrickEvent{gameID, winnerID, winnerName})
}

func (r *RecordingNotifier) RoundCompleted(gameID string, roundNumber int, scores map[string]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rounds = append(r.Rounds, RoundEvent{gameID, roundNumber, scores})
}

func (r *RecordingNotifier) GameFinished(snap *session.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Finished = append(r.Finished, snap)
}

// SnapshotList 返回已记录快照的副本
func (r *RecordingNotifier) SnapshotList() []*session.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*session.Snapshot(nil), r.Snapshots...)
}

// FinishedList 返回已记录的终局快照副本
func (r *RecordingNotifier) FinishedList() []*session.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*session.Snapshot(nil), r.Finished...)
}

// RoundList 返回已记录的轮结束事件副本
func (r *RecordingNotifier) RoundList() []RoundEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RoundEvent(nil), r.Rounds...)
}

// TrickCount 返回已记录的墩结算次数
func (r *RecordingNotifier) TrickCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Tricks)
}

// RoundCount 返回已记录的轮结束次数
func (r *RecordingNotifier) RoundCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Rounds)
}

// FinishedCount 返回已记录的终局次数
func (r *RecordingNotifier) FinishedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Finished)
}
