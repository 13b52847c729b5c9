package audit

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/trimandtone/booking-api/internal/models"
)

const maxEntries = 500

// Logger keeps a bounded in-memory trail of mutations. Like the rest of the
// system it does not survive a restart.
type Logger struct {
	mu     sync.Mutex
	nextID int
	logs   []models.AuditLog
}

func New() *Logger {
	return &Logger{}
}

func (l *Logger) Log(
	actor string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.logs = append(l.logs, models.AuditLog{
		ID:        l.nextID,
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	})

	if len(l.logs) > maxEntries {
		l.logs = l.logs[len(l.logs)-maxEntries:]
	}

	return nil
}

// List returns entries newest first, optionally filtered by action and
// entity, capped at limit.
func (l *Logger) List(action, entity string, limit int) []models.AuditLog {
	if limit <= 0 || limit > maxEntries {
		limit = 50
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	out := []models.AuditLog{}
	for i := len(l.logs) - 1; i >= 0 && len(out) < limit; i-- {
		entry := l.logs[i]
		if action != "" && entry.Action != action {
			continue
		}
		if entity != "" && entry.Entity != entity {
			continue
		}
		out = append(out, entry)
	}
	return out
}
