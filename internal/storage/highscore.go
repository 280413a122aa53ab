package storage

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// HighScoreKey is the only key the game writes.
const HighScoreKey = "tensio.highScore"

// HighScores persists a single non-negative integer high score as a decimal
// string in a KV. It may be shared by concurrent SSH sessions.
type HighScores struct {
	mu     sync.Mutex
	kv     KV
	logger *log.Logger
}

// NewHighScores wraps kv. A nil logger discards messages.
func NewHighScores(kv KV, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScores{kv: kv, logger: logger}
}

// LoadHighScore returns the stored high score. Missing, malformed or
// negative values and read errors all yield 0.
func (h *HighScores) LoadHighScore() int {
	v, ok, err := h.kv.Get(HighScoreKey)
	if err != nil {
		h.logger.Warn("could not read high score", "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	score, valid := ParseHighScore(v)
	if !valid {
		h.logger.Warn("ignoring corrupt high score", "value", v)
	}
	return score
}

// SaveHighScore stores score if it beats the stored value. A lower score
// leaves storage untouched.
func (h *HighScores) SaveHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if score <= h.LoadHighScore() {
		return nil
	}
	return h.kv.Set(HighScoreKey, strconv.Itoa(score))
}

// ParseHighScore decodes a stored high score. Anything that is not a
// non-negative decimal integer decodes as 0 with valid=false.
func ParseHighScore(v string) (score int, valid bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
