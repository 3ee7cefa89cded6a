package store

import (
	"context"
	"sort"
	"time"

	"github.com/creziapro/site/internal/domain"
)

// AddChatSession registers a chat session under the caller-chosen id.
// An empty title gets a default derived from the current date.
func (s *Store) AddChatSession(ctx context.Context, id, title string) (domain.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.ChatSession{}, err
	}

	now := s.now()
	if title == "" {
		title = "Chat " + time.UnixMilli(now).Format("01/02/2006")
	}
	session := domain.ChatSession{
		ID:         id,
		Title:      title,
		CreatedAt:  now,
		LastActive: now,
	}

	if err := s.put(ctx, chatSessionKey(id), session); err != nil {
		return domain.ChatSession{}, err
	}
	s.chatSessions[id] = session
	return session, nil
}

// TouchChatSession bumps LastActive. Unknown ids are a no-op.
func (s *Store) TouchChatSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	session, ok := s.chatSessions[id]
	if !ok {
		return nil
	}
	session.LastActive = s.now()

	if err := s.put(ctx, chatSessionKey(id), session); err != nil {
		return err
	}
	s.chatSessions[id] = session
	return nil
}

// RenameChatSession sets the session title. Returns false if id is unknown.
func (s *Store) RenameChatSession(ctx context.Context, id, title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	session, ok := s.chatSessions[id]
	if !ok {
		return false, nil
	}
	session.Title = title

	if err := s.put(ctx, chatSessionKey(id), session); err != nil {
		return false, err
	}
	s.chatSessions[id] = session
	return true, nil
}

// RemoveChatSession deletes one session. Returns whether it existed.
func (s *Store) RemoveChatSession(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	if _, ok := s.chatSessions[id]; !ok {
		return false, nil
	}
	if err := s.kv.Delete(ctx, chatSessionKey(id)); err != nil {
		return false, err
	}
	delete(s.chatSessions, id)
	return true, nil
}

// ListChatSessions returns all sessions, most recently active first.
func (s *Store) ListChatSessions(ctx context.Context) ([]domain.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	sessions := make([]domain.ChatSession, 0, len(s.chatSessions))
	for _, session := range s.chatSessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastActive > sessions[j].LastActive
	})
	return sessions, nil
}

// ClearChatSessions bulk-deletes every session and returns how many were removed.
func (s *Store) ClearChatSessions(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	count := len(s.chatSessions)
	if count == 0 {
		return 0, nil
	}

	keys := make([]string, 0, count)
	for id := range s.chatSessions {
		keys = append(keys, chatSessionKey(id))
	}
	if err := s.kv.DeleteMany(ctx, keys); err != nil {
		return 0, err
	}
	s.chatSessions = make(map[string]domain.ChatSession)
	return count, nil
}
