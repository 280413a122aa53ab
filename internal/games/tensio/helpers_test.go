package tensio

import (
	"errors"
)

// stubRand returns fixed draws so spawn results are predictable.
type stubRand struct {
	f float64
	n int
}

func (r *stubRand) Float64() float64 { return r.f }

func (r *stubRand) Intn(n int) int { return r.n % n }

// memStore is an in-memory HighScoreStore that records saves.
type memStore struct {
	high  int
	saves []int
	err   error
}

func (m *memStore) LoadHighScore() int { return m.high }

func (m *memStore) SaveHighScore(v int) error {
	m.saves = append(m.saves, v)
	if m.err != nil {
		return m.err
	}
	m.high = v
	return nil
}

var errDiskFull = errors.New("disk full")

// playing returns a session already in PhasePlaying.
func playing(high int) *Session {
	s := NewSession(high)
	s.Begin()
	return s
}
