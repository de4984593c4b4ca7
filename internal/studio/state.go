package studio

import (
	"context"
	"strings"
	"sync"
)

// State is the in-memory copy of the five collections and the single source
// of truth while the service runs. It is hydrated from the snapshot store
// once at startup and flushes the affected collection back after every
// mutation. All writes go through the named operations below so every write
// point is auditable.
type State struct {
	mu    sync.RWMutex
	store *SnapshotStore

	clients      []Client
	appointments []Appointment
	finances     []FinanceRecord
	tasks        []KanbanTask
	settings     Settings
}

// NewState creates an empty container bound to a snapshot store. Call
// Hydrate before serving traffic.
func NewState(store *SnapshotStore) *State {
	if store == nil {
		panic("studio: snapshot store required")
	}
	return &State{store: store}
}

// Hydrate loads all five collections from the persistent store, falling
// back to seed defaults per collection.
func (s *State) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = s.store.LoadClients(ctx)
	s.appointments = s.store.LoadAppointments(ctx)
	s.finances = s.store.LoadFinances(ctx)
	s.tasks = s.store.LoadTasks(ctx)
	s.settings = s.store.LoadSettings(ctx)
}

// Clients returns a copy of the client collection.
func (s *State) Clients() []Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Client(nil), s.clients...)
}

// ClientByID looks up a client by its opaque ID.
func (s *State) ClientByID(id string) (Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// ClientByEmail looks up a client by case-insensitive email. This is the
// dedup key used by the public booking path.
func (s *State) ClientByEmail(email string) (Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if strings.EqualFold(c.Email, email) {
			return c, true
		}
	}
	return Client{}, false
}

// AddClient appends a client and flushes the snapshot.
func (s *State) AddClient(ctx context.Context, client Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, client)
	return s.store.SaveClients(ctx, s.clients)
}

// UpdateClient replaces the client with the same ID and flushes.
func (s *State) UpdateClient(ctx context.Context, client Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == client.ID {
			s.clients[i] = client
			return s.store.SaveClients(ctx, s.clients)
		}
	}
	return ErrClientNotFound
}

// RemoveClient deletes a client by ID and flushes. Appointments referencing
// the client are left untouched; there is no cascade.
func (s *State) RemoveClient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return s.store.SaveClients(ctx, s.clients)
		}
	}
	return ErrClientNotFound
}

// Appointments returns a copy of the schedule.
func (s *State) Appointments() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Appointment(nil), s.appointments...)
}

// AppointmentByID looks up an appointment.
func (s *State) AppointmentByID(id string) (Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return Appointment{}, false
}

// SlotTaken reports whether a non-cancelled appointment already occupies
// the (date, time) pair.
func (s *State) SlotTaken(date, timeSlot string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slotTaken(s.appointments, date, timeSlot)
}

func slotTaken(appointments []Appointment, date, timeSlot string) bool {
	for _, a := range appointments {
		if a.Date == date && a.Time == timeSlot && a.Status != AppointmentCancelled {
			return true
		}
	}
	return false
}

// AddAppointment appends an appointment and flushes the snapshot.
func (s *State) AddAppointment(ctx context.Context, appointment Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, appointment)
	return s.store.SaveAppointments(ctx, s.appointments)
}

// UpdateAppointment replaces the appointment with the same ID and flushes.
func (s *State) UpdateAppointment(ctx context.Context, appointment Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == appointment.ID {
			s.appointments[i] = appointment
			return s.store.SaveAppointments(ctx, s.appointments)
		}
	}
	return ErrAppointmentNotFound
}

// RemoveAppointment deletes an appointment by ID and flushes.
func (s *State) RemoveAppointment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return s.store.SaveAppointments(ctx, s.appointments)
		}
	}
	return ErrAppointmentNotFound
}

// Finances returns a copy of the ledger.
func (s *State) Finances() []FinanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]FinanceRecord(nil), s.finances...)
}

// AddFinanceRecord appends a ledger entry and flushes the snapshot.
func (s *State) AddFinanceRecord(ctx context.Context, record FinanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finances = append(s.finances, record)
	return s.store.SaveFinances(ctx, s.finances)
}

// UpdateFinanceRecord replaces the entry with the same ID and flushes.
func (s *State) UpdateFinanceRecord(ctx context.Context, record FinanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.finances {
		if s.finances[i].ID == record.ID {
			s.finances[i] = record
			return s.store.SaveFinances(ctx, s.finances)
		}
	}
	return ErrFinanceRecordNotFound
}

// RemoveFinanceRecord deletes a ledger entry by ID and flushes.
func (s *State) RemoveFinanceRecord(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.finances {
		if s.finances[i].ID == id {
			s.finances = append(s.finances[:i], s.finances[i+1:]...)
			return s.store.SaveFinances(ctx, s.finances)
		}
	}
	return ErrFinanceRecordNotFound
}

// Tasks returns a copy of the task board.
func (s *State) Tasks() []KanbanTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]KanbanTask(nil), s.tasks...)
}

// AddTask appends a board task and flushes the snapshot.
func (s *State) AddTask(ctx context.Context, task KanbanTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	return s.store.SaveTasks(ctx, s.tasks)
}

// UpdateTask replaces the task with the same ID (moving it between columns)
// and flushes.
func (s *State) UpdateTask(ctx context.Context, task KanbanTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			return s.store.SaveTasks(ctx, s.tasks)
		}
	}
	return ErrTaskNotFound
}

// RemoveTask deletes a task by ID and flushes.
func (s *State) RemoveTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.store.SaveTasks(ctx, s.tasks)
		}
	}
	return ErrTaskNotFound
}

// Settings returns the current booking defaults.
func (s *State) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the booking defaults and flushes.
func (s *State) UpdateSettings(ctx context.Context, settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.store.SaveSettings(ctx, s.settings)
}

// BookingWrite is the combined mutation performed by one online booking:
// an optional new client, exactly one appointment, and exactly one income
// record, applied as a single logical step under one lock.
type BookingWrite struct {
	NewClient   *Client
	Appointment Appointment
	Finance     FinanceRecord
}

// ApplyBooking applies the booking write atomically from the caller's
// perspective: the slot is re-checked under the lock, then all in-memory
// appends happen together before the snapshots are flushed. A taken slot
// leaves the state untouched.
func (s *State) ApplyBooking(ctx context.Context, write BookingWrite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slotTaken(s.appointments, write.Appointment.Date, write.Appointment.Time) {
		return ErrSlotTaken
	}

	if write.NewClient != nil {
		s.clients = append(s.clients, *write.NewClient)
	}
	s.appointments = append(s.appointments, write.Appointment)
	s.finances = append(s.finances, write.Finance)

	if write.NewClient != nil {
		if err := s.store.SaveClients(ctx, s.clients); err != nil {
			return err
		}
	}
	if err := s.store.SaveAppointments(ctx, s.appointments); err != nil {
		return err
	}
	return s.store.SaveFinances(ctx, s.finances)
}
