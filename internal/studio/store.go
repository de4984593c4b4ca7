package studio

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

// Persistent store keys, one per collection plus the admin auth flag.
// Each collection value is a complete JSON snapshot of its in-memory
// slice, overwritten wholesale on every change.
const (
	keyClients      = "studio:clients"
	keyAppointments = "studio:appointments"
	keyFinances     = "studio:finances"
	keyKanban       = "studio:kanban"
	keySettings     = "studio:settings"
	keyAdminAuth    = "studio:admin_auth"
)

// SnapshotStore persists whole-collection snapshots in Redis. A missing or
// malformed snapshot is recovered by falling back to the seed defaults.
type SnapshotStore struct {
	redis            *redis.Client
	logger           *logging.Logger
	settingsDefaults Settings
}

// NewSnapshotStore creates a store backed by the given Redis client.
func NewSnapshotStore(redisClient *redis.Client, logger *logging.Logger) *SnapshotStore {
	if redisClient == nil {
		panic("studio: redis client required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SnapshotStore{
		redis:            redisClient,
		logger:           logger,
		settingsDefaults: DefaultSettings(),
	}
}

// SetSettingsDefaults overrides the fallback used when no settings snapshot
// has been persisted, letting deployment config set the initial price and
// duration.
func (s *SnapshotStore) SetSettingsDefaults(defaults Settings) {
	if defaults.DefaultPrice > 0 && defaults.DefaultDuration > 0 {
		s.settingsDefaults = defaults
	}
}

// LoadClients returns the persisted client collection, or the seed on
// missing/corrupt data.
func (s *SnapshotStore) LoadClients(ctx context.Context) []Client {
	var clients []Client
	if s.load(ctx, keyClients, &clients) {
		return clients
	}
	return SeedClients()
}

// SaveClients overwrites the client snapshot.
func (s *SnapshotStore) SaveClients(ctx context.Context, clients []Client) error {
	return s.save(ctx, keyClients, clients)
}

// LoadAppointments returns the persisted schedule, or the seed on
// missing/corrupt data.
func (s *SnapshotStore) LoadAppointments(ctx context.Context) []Appointment {
	var appointments []Appointment
	if s.load(ctx, keyAppointments, &appointments) {
		return appointments
	}
	return SeedAppointments(time.Now())
}

// SaveAppointments overwrites the appointment snapshot.
func (s *SnapshotStore) SaveAppointments(ctx context.Context, appointments []Appointment) error {
	return s.save(ctx, keyAppointments, appointments)
}

// LoadFinances returns the persisted ledger, or the seed on missing/corrupt
// data.
func (s *SnapshotStore) LoadFinances(ctx context.Context) []FinanceRecord {
	var records []FinanceRecord
	if s.load(ctx, keyFinances, &records) {
		return records
	}
	return SeedFinances()
}

// SaveFinances overwrites the ledger snapshot.
func (s *SnapshotStore) SaveFinances(ctx context.Context, records []FinanceRecord) error {
	return s.save(ctx, keyFinances, records)
}

// LoadTasks returns the persisted task board, or the seed on missing/corrupt
// data.
func (s *SnapshotStore) LoadTasks(ctx context.Context) []KanbanTask {
	var tasks []KanbanTask
	if s.load(ctx, keyKanban, &tasks) {
		return tasks
	}
	return SeedTasks()
}

// SaveTasks overwrites the task board snapshot.
func (s *SnapshotStore) SaveTasks(ctx context.Context, tasks []KanbanTask) error {
	return s.save(ctx, keyKanban, tasks)
}

// LoadSettings returns the persisted settings, or the defaults on
// missing/corrupt data.
func (s *SnapshotStore) LoadSettings(ctx context.Context) Settings {
	var settings Settings
	if s.load(ctx, keySettings, &settings) {
		return settings
	}
	return s.settingsDefaults
}

// SaveSettings overwrites the settings snapshot.
func (s *SnapshotStore) SaveSettings(ctx context.Context, settings Settings) error {
	return s.save(ctx, keySettings, settings)
}

// AuthFlag reports whether the persisted admin session flag is set.
func (s *SnapshotStore) AuthFlag(ctx context.Context) (bool, error) {
	value, err := s.redis.Get(ctx, keyAdminAuth).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("studio: get auth flag: %w", err)
	}
	return value == "true", nil
}

// SetAuthFlag persists the admin session flag. Clearing it removes the key,
// matching the flag's boolean-as-string contract.
func (s *SnapshotStore) SetAuthFlag(ctx context.Context, authenticated bool) error {
	if !authenticated {
		if err := s.redis.Del(ctx, keyAdminAuth).Err(); err != nil {
			return fmt.Errorf("studio: clear auth flag: %w", err)
		}
		return nil
	}
	if err := s.redis.Set(ctx, keyAdminAuth, "true", 0).Err(); err != nil {
		return fmt.Errorf("studio: set auth flag: %w", err)
	}
	return nil
}

// load reads and decodes a snapshot into dest, reporting whether dest now
// holds usable data. Missing keys and corrupt payloads both report false so
// callers fall back to seeds.
func (s *SnapshotStore) load(ctx context.Context, key string, dest any) bool {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.logger.Warn("snapshot read failed, using defaults", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("snapshot corrupt, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

func (s *SnapshotStore) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("studio: marshal %s: %w", key, err)
	}
	if err := s.redis.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("studio: save %s: %w", key, err)
	}
	return nil
}
