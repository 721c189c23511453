// Package memory provides in-process repositories for handler and use case
// tests. They mirror the gorm repositories' ordering and cascade rules.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type Store struct {
	mu  sync.Mutex
	now func() time.Time
	seq uint

	clients      map[uint]models.Client
	appointments map[uint]models.Appointment
	notes        map[uint]models.Note
	users        map[uint]models.User
	audit        []models.AuditLog
}

func NewStore() *Store {
	return &Store{
		now:          time.Now,
		clients:      map[uint]models.Client{},
		appointments: map[uint]models.Appointment{},
		notes:        map[uint]models.Note{},
		users:        map[uint]models.User{},
	}
}

func (s *Store) nextID() uint {
	s.seq++
	return s.seq
}

// AddClient stores c and returns it with an id.
func (s *Store) AddClient(c models.Client) models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID()
	c.CreatedAt, c.UpdatedAt = s.now(), s.now()
	s.clients[c.ID] = c
	return c
}

// AddAppointment stores ap without checking its client.
func (s *Store) AddAppointment(ap models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	ap.ID = s.nextID()
	ap.CreatedAt, ap.UpdatedAt = s.now(), s.now()
	ap.Client = models.Client{}
	s.appointments[ap.ID] = ap
	return ap
}

func (s *Store) AddNote(n models.Note) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.nextID()
	n.CreatedAt, n.UpdatedAt = s.now(), s.now()
	s.notes[n.ID] = n
	return n
}

func (s *Store) AppointmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appointments)
}

func (s *Store) NoteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// AppointmentByID returns the stored row as is.
func (s *Store) AppointmentByID(id uint) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ap, ok := s.appointments[id]
	return ap, ok
}

func (s *Store) withClient(ap models.Appointment) models.Appointment {
	ap.Client = s.clients[ap.ClientID]
	return ap
}

func sortAppointments(apps []models.Appointment) {
	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].Time.Equal(apps[j].Time) {
			return apps[i].Time.Before(apps[j].Time)
		}
		return apps[i].ID < apps[j].ID
	})
}

func (s *Store) deleteNotes(kind string, id uint) {
	for nid, n := range s.notes {
		if n.MemoableType == kind && n.MemoableID == id {
			delete(s.notes, nid)
		}
	}
}
