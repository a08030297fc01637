package breaks

import (
	"context"
	"sort"
	"sync"
	"time"
)

var _ breaksRepo = (*repoMock)(nil)

// repoMock is an in-memory breaksRepo used in tests.
type repoMock struct {
	mutex  sync.Mutex
	nextID int64
	Events []BreakEvent
}

func NewRepoMock() *repoMock {
	return &repoMock{
		nextID: 1,
	}
}

func (r *repoMock) Add(_ context.Context, event BreakEvent) (*BreakEvent, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	event.ID = r.nextID
	r.nextID++
	r.Events = append(r.Events, event)
	return &event, nil
}

func (r *repoMock) ListAll(_ context.Context) ([]BreakEvent, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	events := make([]BreakEvent, len(r.Events))
	copy(events, r.Events)
	return events, nil
}

func (r *repoMock) ListByUser(_ context.Context, userID string) ([]BreakEvent, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var events []BreakEvent
	for _, event := range r.Events {
		if event.UsuarioID == userID {
			events = append(events, event)
		}
	}
	sortByTimestampDesc(events)
	return events, nil
}

func (r *repoMock) ListByUserSince(_ context.Context, userID string, since time.Time) ([]BreakEvent, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var events []BreakEvent
	for _, event := range r.Events {
		if event.UsuarioID == userID && !event.Timestamp.Before(since) {
			events = append(events, event)
		}
	}
	sortByTimestampDesc(events)
	return events, nil
}

func (r *repoMock) CountFinishedSince(_ context.Context, userID string, since time.Time) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	count := 0
	for _, event := range r.Events {
		if event.UsuarioID == userID && event.Tipo == EventKindFinished && !event.Timestamp.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *repoMock) Top(ctx context.Context, n int, userID string) ([]BreakEvent, error) {
	events, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(events) > n {
		events = events[:n]
	}
	return events, nil
}

func (r *repoMock) Count(_ context.Context) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return len(r.Events), nil
}

func sortByTimestampDesc(events []BreakEvent) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
}
