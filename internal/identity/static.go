package identity

import (
	"context"
	"fmt"
	"sync"
)

// StaticProvider - провайдер в памяти для локальной разработки и тестов.
// Неизвестных пользователей отдает с username = id, если Fallback включен.
type StaticProvider struct {
	Fallback bool

	mu    sync.RWMutex
	users map[string]Profile
	calls int
}

func NewStaticProvider(profiles ...Profile) *StaticProvider {
	p := &StaticProvider{users: make(map[string]Profile, len(profiles))}
	for _, profile := range profiles {
		p.users[profile.ID] = profile
	}
	return p
}

// Calls - сколько раз вызывался GetUser
func (p *StaticProvider) Calls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.calls
}

func (p *StaticProvider) GetUser(ctx context.Context, userID string) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	profile, ok := p.users[userID]
	if !ok {
		if !p.Fallback {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		profile = Profile{ID: userID, Username: userID}
	}
	return &profile, nil
}
