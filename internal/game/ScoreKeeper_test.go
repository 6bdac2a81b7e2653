package game

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type memoryScoreStore struct {
	mu      sync.Mutex
	saved   []Result
	failFor string
}

func (m *memoryScoreStore) SaveScore(_ context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.PlayerName == m.failFor {
		return errors.New("disk full")
	}
	m.saved = append(m.saved, r)
	return nil
}

func TestScoreKeeperPersistsOnClose(t *testing.T) {
	store := &memoryScoreStore{failFor: "eve"}
	keeper := NewScoreKeeper(store)

	keeper.Submit(Result{SessionID: "1", PlayerName: "ada", Eaten: 4})
	keeper.Submit(Result{SessionID: "2", PlayerName: ""})
	keeper.Submit(Result{SessionID: "3", PlayerName: "eve"})
	keeper.Submit(Result{SessionID: "4", PlayerName: "bob", Eaten: 1})
	keeper.Close()
	keeper.Close()

	if len(store.saved) != 2 {
		t.Fatalf("saved %+v, want ada and bob", store.saved)
	}
	names := map[string]bool{}
	for _, r := range store.saved {
		names[r.PlayerName] = true
	}
	if !names["ada"] || !names["bob"] {
		t.Errorf("saved %+v", store.saved)
	}
}

func TestScoreKeeperWithSqlite(t *testing.T) {
	service := newTestHighScoreService(t)
	keeper := NewScoreKeeper(service)
	keeper.Submit(Result{SessionID: "x", PlayerName: "ada", Game: GameSnake, Eaten: 7, Length: 8})
	keeper.Close()

	count, err := service.GetTotalScoreCount(context.Background())
	if err != nil || count != 1 {
		t.Fatalf("count %d err %v", count, err)
	}
}

func TestScoreKeeperDropsAfterClose(t *testing.T) {
	store := &memoryScoreStore{}
	keeper := NewScoreKeeper(store)
	keeper.Close()

	keeper.Submit(Result{SessionID: "late", PlayerName: "ada"})

	if len(store.saved) != 0 {
		t.Fatalf("saved %+v after close", store.saved)
	}
}
