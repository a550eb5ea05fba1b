package memory_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/wedifit/wedifit-services/api/internal/infrastructure/memory"
	survey "github.com/wedifit/wedifit-services/api/internal/survey/domain"
)

func TestCreateAndGet(t *testing.T) {
	store := memory.NewSessionStore()
	created := store.Create()
	if created.ID == "" {
		t.Fatal("created session has no id")
	}
	if created.Survey.Step != survey.StepDecision {
		t.Fatalf("new session wizard step = %d", created.Survey.Step)
	}

	got, err := store.Get(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != created.ID {
		t.Fatalf("got id %s, want %s", got.ID, created.ID)
	}
}

func TestGetUnknownSession(t *testing.T) {
	store := memory.NewSessionStore()
	if _, err := store.Get("missing"); !errors.Is(err, memory.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestUpdateReplacesOnSuccessOnly(t *testing.T) {
	store := memory.NewSessionStore()
	created := store.Create()

	updated, err := store.Update(created.ID, func(r *memory.Record) error {
		r.Survey.Answers.Moods = []string{"포근한 파스텔"}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(updated.Survey.Answers.Moods) != 1 {
		t.Fatal("update result must carry the mutation")
	}

	failure := errors.New("rejected")
	_, err = store.Update(created.ID, func(r *memory.Record) error {
		r.Survey.Answers.Moods = nil
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("err = %v", err)
	}

	got, _ := store.Get(created.ID)
	if len(got.Survey.Answers.Moods) != 1 {
		t.Fatal("failed update must leave the stored session untouched")
	}
}

func TestUpdateUnknownSession(t *testing.T) {
	store := memory.NewSessionStore()
	_, err := store.Update("missing", func(r *memory.Record) error { return nil })
	if !errors.Is(err, memory.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	store := memory.NewSessionStore()
	created := store.Create()
	store.Delete(created.ID)
	if _, err := store.Get(created.ID); !errors.Is(err, memory.ErrSessionNotFound) {
		t.Fatal("deleted session still readable")
	}

	// Deleting twice is fine.
	store.Delete(created.ID)
}

func TestConcurrentUpdates(t *testing.T) {
	store := memory.NewSessionStore()
	created := store.Create()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(created.ID, func(r *memory.Record) error {
				r.Survey.Answers.BudgetStudio++
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := store.Get(created.ID)
	want := 150 + 32 // default studio budget plus one per goroutine
	if got.Survey.Answers.BudgetStudio != want {
		t.Fatalf("studio budget = %d, want %d", got.Survey.Answers.BudgetStudio, want)
	}
}
