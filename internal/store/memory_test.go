package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/dictionary"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

var acceptAll = dictionary.Func(func(string, string) bool { return false })

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.StartRoundWith("silkworm")
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.RootWord != "silkworm" {
		t.Errorf("RootWord = %q", got.RootWord)
	}
	if st.Len() != 1 {
		t.Errorf("Len = %d, want 1", st.Len())
	}
}

func TestGetMissing(t *testing.T) {
	st := NewMemoryStore()
	if _, err := st.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveRejectsNil(t *testing.T) {
	st := NewMemoryStore()
	if err := st.Save(context.Background(), nil); err == nil {
		t.Error("Save(nil) returned nil error")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.StartRoundWith("silkworm")
	_ = st.Save(ctx, s)

	got, _ := st.Get(ctx, s.ID)
	got.RecordWord("silk")

	again, _ := st.Get(ctx, s.ID)
	if again.WordCount() != 0 {
		t.Error("Get did not return a copy; mutation leaked into store")
	}
}

func TestUpdateMutatesStoredRound(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.StartRoundWith("silkworm")
	_ = st.Save(ctx, s)

	err := st.Update(ctx, s.ID, func(r *game.Session) error {
		_, err := r.Submit("silk", acceptAll)
		return err
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := st.Get(ctx, s.ID)
	if words := got.UsedWords(); len(words) != 1 || words[0] != "silk" {
		t.Errorf("UsedWords = %v", words)
	}
}

func TestUpdatePassesErrorThrough(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.StartRoundWith("eagle")
	_ = st.Save(ctx, s)

	err := st.Update(ctx, s.ID, func(r *game.Session) error {
		_, err := r.Submit("eagles", acceptAll)
		return err
	})
	if !errors.Is(err, game.ErrNotComposable) {
		t.Errorf("err = %v, want ErrNotComposable", err)
	}
	if err := st.Update(ctx, "missing", func(*game.Session) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing round err = %v, want ErrNotFound", err)
	}
}

func TestUpdateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewMemoryStore()
	called := false
	err := st.Update(ctx, "any", func(*game.Session) error { called = true; return nil })
	if !errors.Is(err, context.Canceled) || called {
		t.Errorf("err = %v called = %v, want context.Canceled and no call", err, called)
	}
}

func TestConcurrentSubmitsAreSerialized(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.StartRoundWith("silkworm")
	_ = st.Save(ctx, s)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Update(ctx, s.ID, func(r *game.Session) error {
				_, err := r.Submit("worm", acceptAll)
				return err
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Errorf("accepted %d times, want exactly 1", accepted)
	}
	got, _ := st.Get(ctx, s.ID)
	if got.WordCount() != 1 {
		t.Errorf("WordCount = %d, want 1", got.WordCount())
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.StartRoundWith("silkworm")
	_ = st.Save(ctx, s)
	if err := st.Delete(ctx, s.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("after Delete err = %v", err)
	}
	if err := st.Delete(ctx, s.ID); err != nil {
		t.Errorf("second Delete err = %v", err)
	}
}
