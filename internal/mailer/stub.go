package mailer

import (
	"log"
	"sync"
)

type StubMessage struct {
	To    string
	Token string
}

// Stub records outgoing activation mails instead of delivering them.
// Selected when MAIL_PROVIDER is not "smtp"; the tests use it too.
type Stub struct {
	mu   sync.Mutex
	sent []StubMessage

	// Err, when set, is returned by every send
	Err error
}

func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) SendActivationEmail(to string, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	s.sent = append(s.sent, StubMessage{To: to, Token: token})
	log.Printf("[MAIL] stub: activation mail to=%s token=%s", to, token)
	return nil
}

func (s *Stub) Sent() []StubMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]StubMessage, len(s.sent))
	copy(out, s.sent)
	return out
}

func (s *Stub) LastMessage() (StubMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sent) == 0 {
		return StubMessage{}, false
	}
	return s.sent[len(s.sent)-1], true
}
