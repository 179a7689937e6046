package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

type entry struct {
	session   *domain.BookingSession
	expiresAt time.Time
}

// Repository хранилище сессий бронирования в памяти
// Каждое обращение продлевает жизнь сессии на ttl
type Repository struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewRepository создает хранилище сессий с временем жизни ttl
func NewRepository(ttl time.Duration) *Repository {
	return &Repository{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create сохраняет новую сессию
func (r *Repository) Create(_ context.Context, session *domain.BookingSession) (*domain.BookingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[session.ID]; ok && !r.expired(e) {
		return nil, ErrSessionExists
	}

	now := r.now()
	stored := session.Clone()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.sessions[session.ID] = &entry{session: stored, expiresAt: now.Add(r.ttl)}
	return stored.Clone(), nil
}

// GetByID возвращает копию сессии
func (r *Repository) GetByID(_ context.Context, id string) (*domain.BookingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.expiresAt = r.now().Add(r.ttl)
	return e.session.Clone(), nil
}

// Update атомарно изменяет сессию функцией fn
// Если fn вернула ошибку, сессия остается без изменений
func (r *Repository) Update(
	_ context.Context,
	id string,
	fn func(session *domain.BookingSession) error,
) (*domain.BookingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	draft := e.session.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}

	now := r.now()
	draft.UpdatedAt = now
	e.session = draft
	e.expiresAt = now.Add(r.ttl)

	return draft.Clone(), nil
}

// Delete удаляет сессию
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(id); err != nil {
		return err
	}
	delete(r.sessions, id)
	return nil
}

// Sweep удаляет истекшие сессии и возвращает их количество
func (r *Repository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.sessions {
		if r.expired(e) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper периодически вызывает Sweep, пока не отменен ctx
func (r *Repository) StartSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := r.Sweep(); removed > 0 && onSweep != nil {
					onSweep(removed)
				}
			}
		}
	}()
}

func (r *Repository) lookup(id string) (*entry, error) {
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if r.expired(e) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func (r *Repository) expired(e *entry) bool {
	return !r.now().Before(e.expiresAt)
}
