package game

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const saveScoreTimeout = 5 * time.Second

type ScoreStore interface {
	SaveScore(ctx context.Context, result Result) error
}

// ScoreKeeper persists finished sessions off the game loop goroutines.
type ScoreKeeper struct {
	FinishedSessions chan Result

	store  ScoreStore
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewScoreKeeper(store ScoreStore) *ScoreKeeper {
	keeper := &ScoreKeeper{
		FinishedSessions: make(chan Result, scoreWorkersCount*4),
		store:            store,
	}

	for w := 1; w <= scoreWorkersCount; w++ {
		keeper.wg.Add(1)
		go keeper.saveScoresWorker()
	}
	return keeper
}

// Submit queues a result. Results submitted after Close are dropped.
func (k *ScoreKeeper) Submit(result Result) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.closed {
		log.Warn("Score keeper closed, dropping result", "player", result.PlayerName, "session", result.SessionID)
		return
	}
	k.FinishedSessions <- result
}

// Close stops accepting results and waits for queued ones to be written.
func (k *ScoreKeeper) Close() {
	k.mu.Lock()
	if !k.closed {
		k.closed = true
		close(k.FinishedSessions)
	}
	k.mu.Unlock()
	k.wg.Wait()
}

func (k *ScoreKeeper) saveScoresWorker() {
	defer k.wg.Done()
	for result := range k.FinishedSessions {
		k.saveScore(result)
	}
}

func (k *ScoreKeeper) saveScore(result Result) {
	if result.PlayerName == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveScoreTimeout)
	defer cancel()

	if err := k.store.SaveScore(ctx, result); err != nil {
		log.Error("High score persist failed", "player", result.PlayerName, "session", result.SessionID, "error", err)
		return
	}
	log.Info("High score saved", "player", result.PlayerName, "eaten", result.Eaten, "length", result.Length)
}
