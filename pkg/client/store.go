package client

import (
	"context"
	"sync"
)

// Session holds the last login result in memory. Nothing is persisted and no
// token exists; logging out simply clears the state.
type Session struct {
	client *Client

	mu          sync.Mutex
	currentUser *User
	lastMessage string
}

func NewSession(c *Client) *Session {
	return &Session{client: c}
}

// Login validates the credentials and, on success, records the user and the
// welcome message for the rest of the session.
func (s *Session) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.currentUser = result.Usuario
	s.lastMessage = result.Message
	s.mu.Unlock()

	return result, nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	s.lastMessage = ""
	s.mu.Unlock()
}

func (s *Session) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

func (s *Session) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

func (s *Session) LastMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMessage
}

// Store is a read-through, non-authoritative cache over patients and their
// consultation lists. Entries live for the lifetime of the Store; there is no
// eviction. Writes through the Store invalidate the affected entries.
type Store struct {
	client *Client

	mu                     sync.Mutex
	patientsByID           map[int64]*Patient
	consultationsByPatient map[int64][]Consultation
}

func NewStore(c *Client) *Store {
	return &Store{
		client:                 c,
		patientsByID:           make(map[int64]*Patient),
		consultationsByPatient: make(map[int64][]Consultation),
	}
}

// Patient returns the cached patient or fetches it. A missing patient is
// (nil, nil) and is not cached.
func (s *Store) Patient(ctx context.Context, id int64) (*Patient, error) {
	s.mu.Lock()
	if p, ok := s.patientsByID[id]; ok {
		s.mu.Unlock()
		return p, nil
	}
	s.mu.Unlock()

	p, err := s.client.GetPatientByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}

	s.mu.Lock()
	s.patientsByID[id] = p
	s.mu.Unlock()
	return p, nil
}

// Consultations returns the cached consultation list for a patient or
// fetches it.
func (s *Store) Consultations(ctx context.Context, patientID int64, limit int) ([]Consultation, error) {
	s.mu.Lock()
	if list, ok := s.consultationsByPatient[patientID]; ok {
		s.mu.Unlock()
		return list, nil
	}
	s.mu.Unlock()

	list, err := s.client.ConsultationsByPatient(ctx, patientID, limit)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.consultationsByPatient[patientID] = list
	s.mu.Unlock()
	return list, nil
}

// AddPatient registers a patient and caches the result.
func (s *Store) AddPatient(ctx context.Context, payload CreatePatientPayload) (*Patient, error) {
	p, err := s.client.CreatePatient(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.patientsByID[p.ID] = p
	s.mu.Unlock()
	return p, nil
}

// AddConsultation registers a consultation and drops the patient's cached
// list so the next read refetches it.
func (s *Store) AddConsultation(ctx context.Context, payload CreateConsultationPayload) (*Consultation, error) {
	c, err := s.client.CreateConsultation(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.consultationsByPatient, c.PacienteID)
	s.mu.Unlock()
	return c, nil
}
