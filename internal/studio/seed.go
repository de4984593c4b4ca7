package studio

import "time"

// Seed data mirrors the studio's first-run defaults: one long-standing
// client, a session already on the books for tomorrow, and the running
// supply-restock tasks. Finances start empty.

// DefaultSettings returns the booking defaults used when no settings
// snapshot has been persisted yet.
func DefaultSettings() Settings {
	return Settings{DefaultPrice: 250, DefaultDuration: 240}
}

// SeedClients returns the initial client collection.
func SeedClients() []Client {
	return []Client{
		{
			ID:              "1",
			Name:            "Juliana Silva",
			Address:         "Rio de Janeiro",
			Phone:           "21999999999",
			Email:           "juliana@email.com",
			Status:          ClientActive,
			TreatmentStage:  "Regular",
			LastSessionDate: "2024-01-15",
		},
	}
}

// SeedAppointments returns the initial schedule: one Box Braids session
// tomorrow morning, relative to now.
func SeedAppointments(now time.Time) []Appointment {
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	return []Appointment{
		{
			ID:       "app-juliana-1",
			ClientID: "1",
			Date:     tomorrow,
			Time:     "08:00",
			Type:     "Box Braids",
			Status:   AppointmentScheduled,
			Price:    350,
			Duration: 360,
		},
	}
}

// SeedFinances returns the initial (empty) ledger.
func SeedFinances() []FinanceRecord {
	return []FinanceRecord{}
}

// SeedTasks returns the initial task board.
func SeedTasks() []KanbanTask {
	return []KanbanTask{
		{ID: "k1", Title: "Comprar Jumbo Roxo e Dourado", Status: TaskTodo},
		{ID: "k2", Title: "Repor pomada modeladora", Status: TaskDoing},
	}
}
