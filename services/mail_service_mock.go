package services

import (
	"sync"
)

// SentMail captures one mail handed to the mock for test assertions
type SentMail struct {
	To   string
	Kind string // "access_code" or "password_reset"
	Code string
}

// MockMailService is a mock implementation of MailService for testing
type MockMailService struct {
	mu   sync.Mutex
	sent []SentMail

	// Err, when set, is returned by every send to simulate relay failures
	Err error
}

// NewMockMailService creates a new mock mail service
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// SendAccessCode records the access-code mail instead of sending it
func (m *MockMailService) SendAccessCode(to, code string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.sent = append(m.sent, SentMail{To: to, Kind: "access_code", Code: code})
	m.mu.Unlock()
	return nil
}

// SendPasswordReset records the recovery mail instead of sending it
func (m *MockMailService) SendPasswordReset(to, code string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.sent = append(m.sent, SentMail{To: to, Kind: "password_reset", Code: code})
	m.mu.Unlock()
	return nil
}

// Sent returns a copy of all recorded mails (for testing assertions)
func (m *MockMailService) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

// LastTo returns the recipient of the most recent mail, or "" when none
func (m *MockMailService) LastTo() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1].To
}

// Clear removes all recorded mails
func (m *MockMailService) Clear() {
	m.mu.Lock()
	m.sent = nil
	m.mu.Unlock()
}
