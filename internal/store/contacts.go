package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/creziapro/site/internal/domain"
)

// AddContactMessage stores a contact form submission. The record gets a
// fresh id, the current timestamp and starts unread.
func (s *Store) AddContactMessage(ctx context.Context, name, email, message string) (domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.ContactMessage{}, err
	}

	record := domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: s.now(),
		Read:      false,
	}

	if err := s.put(ctx, contactKey(record.ID), record); err != nil {
		return domain.ContactMessage{}, err
	}
	s.contacts[record.ID] = record
	return record, nil
}

// ListContactMessages returns every message, newest first.
func (s *Store) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	messages := make([]domain.ContactMessage, 0, len(s.contacts))
	for _, message := range s.contacts {
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp > messages[j].Timestamp
	})
	return messages, nil
}

// MarkMessageRead flips the read flag. Returns false if id is unknown.
func (s *Store) MarkMessageRead(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	message, ok := s.contacts[id]
	if !ok {
		return false, nil
	}
	message.Read = true

	if err := s.put(ctx, contactKey(id), message); err != nil {
		return false, err
	}
	s.contacts[id] = message
	return true, nil
}

// DeleteContactMessage removes one message. Returns whether it existed.
func (s *Store) DeleteContactMessage(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	if _, ok := s.contacts[id]; !ok {
		return false, nil
	}
	if err := s.kv.Delete(ctx, contactKey(id)); err != nil {
		return false, err
	}
	delete(s.contacts, id)
	return true, nil
}
