// Package studio holds the domain model for the braiding studio back office:
// the five persisted collections and the in-memory state container that owns
// them during a running session.
package studio

// ClientStatus tracks where a client stands with the studio.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientPending  ClientStatus = "pending"
	ClientInactive ClientStatus = "inactive"
)

// AppointmentStatus tracks the lifecycle of a scheduled session.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// FinanceType distinguishes ledger entries.
type FinanceType string

const (
	FinanceIncome  FinanceType = "income"
	FinanceExpense FinanceType = "expense"
)

// TaskStatus is the kanban column a task sits in.
type TaskStatus string

const (
	TaskTodo  TaskStatus = "todo"
	TaskDoing TaskStatus = "doing"
	TaskDone  TaskStatus = "done"
)

// Client is a studio client record. Email is the dedup key for the public
// booking path; ID is otherwise opaque.
type Client struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	Phone          string       `json:"phone"`
	Email          string       `json:"email"`
	Status         ClientStatus `json:"status"`
	TreatmentStage string       `json:"treatmentStage"`
	// LastSessionDate is "2006-01-02" or empty when the client has not
	// had a session yet.
	LastSessionDate string `json:"lastSessionDate,omitempty"`
}

// Appointment is one booked session. Date is "2006-01-02" and Time is
// "15:04"; together with a non-cancelled status they occupy a slot.
type Appointment struct {
	ID       string            `json:"id"`
	ClientID string            `json:"clientId"`
	Date     string            `json:"date"`
	Time     string            `json:"time"`
	Type     string            `json:"type"`
	Status   AppointmentStatus `json:"status"`
	Price    float64           `json:"price"`
	// Duration is the session length in minutes.
	Duration int `json:"duration"`
}

// FinanceRecord is one ledger entry. Online bookings append one income
// record per appointment; everything else is managed by the admin screens.
type FinanceRecord struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Amount      float64     `json:"amount"`
	Type        FinanceType `json:"type"`
	Date        string      `json:"date"`
	Category    string      `json:"category"`
}

// KanbanTask is an item on the studio task board.
type KanbanTask struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

// Settings holds process-wide booking defaults, read at booking time.
type Settings struct {
	DefaultPrice float64 `json:"defaultPrice"`
	// DefaultDuration is in minutes.
	DefaultDuration int `json:"defaultDuration"`
}
