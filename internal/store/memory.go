package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-session-client/models"
)

// memoryStore keeps users and sessions in maps guarded by one RWMutex. It
// implements both [UserRepository] and [SessionRepository].
type memoryStore struct {
	mu sync.RWMutex

	users    map[int64]models.User
	sessions map[int64]models.Session

	nextUserID    int64
	nextSessionID int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[int64]models.User),
		sessions: make(map[int64]models.Session),
	}
}

func (m *memoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	m.nextUserID++
	user.ID = m.nextUserID
	user.Password = ""
	m.users[user.ID] = user

	return user, nil
}

func (m *memoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

func (m *memoryStore) DeleteUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return ErrNoUserWasFound
	}
	delete(m.users, userID)

	return nil
}

func (m *memoryStore) CreateSession(_ context.Context, session models.Session) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSessionID++
	session.ID = m.nextSessionID
	m.sessions[session.ID] = session

	return session, nil
}

func (m *memoryStore) GetSession(_ context.Context, sessionID int64) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (m *memoryStore) GetSessionsByUserID(_ context.Context, userID int64) ([]models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]models.Session, 0)
	for _, s := range m.sessions {
		if s.UserID == userID {
			sessions = append(sessions, s)
		}
	}
	slices.SortFunc(sessions, func(a, b models.Session) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return sessions, nil
}

func (m *memoryStore) RotateTokens(_ context.Context, sessionID int64, refreshToken, newAccessToken, newRefreshToken string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if session.RefreshToken != refreshToken {
		return models.Session{}, ErrRefreshTokenMismatch
	}

	session.AccessToken = newAccessToken
	session.RefreshToken = newRefreshToken
	m.sessions[sessionID] = session

	return session, nil
}

func (m *memoryStore) DeleteSession(_ context.Context, sessionID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, sessionID)

	return nil
}

func (m *memoryStore) DeleteSessionsByUserID(_ context.Context, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for id, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, id)
			deleted++
		}
	}

	return deleted, nil
}
