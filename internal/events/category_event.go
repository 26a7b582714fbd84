// Package events описывает формат событий изменения категорий, публикуемых через outbox.
// Событие кодируется как google.protobuf.Struct, поэтому потребителям не нужны сгенерированные типы.
package events

import (
	"fmt"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// CategoryEvent — событие изменения категории.
type CategoryEvent struct {
	EventID    string
	EventType  string
	OccurredAt time.Time
	CategoryID string
	// Snapshot отсутствует у событий удаления.
	Snapshot *CategorySnapshot
}

// CategorySnapshot — состояние категории на момент события.
type CategorySnapshot struct {
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

func NewCategoryEvent(eventID, eventType string, categoryID domain.CategoryID, category *domain.Category) *CategoryEvent {
	event := &CategoryEvent{
		EventID:    eventID,
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		CategoryID: categoryID.String(),
	}

	if category != nil {
		event.Snapshot = &CategorySnapshot{
			Name:        category.NameValue(),
			Description: category.Description,
			IsActive:    category.IsActive,
			CreatedAt:   category.CreatedAt,
			UpdatedAt:   category.UpdatedAt,
			DeletedAt:   category.DeletedAt,
		}
	}

	return event
}

// Marshal кодирует событие в бинарный protobuf.
func (ev *CategoryEvent) Marshal() ([]byte, error) {
	fields := map[string]any{
		"event_id":    ev.EventID,
		"event_type":  ev.EventType,
		"occurred_at": formatTime(ev.OccurredAt),
		"category_id": ev.CategoryID,
	}

	if s := ev.Snapshot; s != nil {
		fields["category"] = map[string]any{
			"name":        s.Name,
			"description": optionalString(s.Description),
			"is_active":   s.IsActive,
			"created_at":  formatTime(s.CreatedAt),
			"updated_at":  formatTime(s.UpdatedAt),
			"deleted_at":  optionalTime(s.DeletedAt),
		}
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build category event: %w", err)
	}

	return proto.MarshalOptions{Deterministic: true}.Marshal(st)
}

// Unmarshal декодирует событие, закодированное Marshal.
func Unmarshal(data []byte) (*CategoryEvent, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode category event: %w", err)
	}

	m := st.AsMap()
	ev := &CategoryEvent{
		EventID:    stringField(m, "event_id"),
		EventType:  stringField(m, "event_type"),
		CategoryID: stringField(m, "category_id"),
	}

	occurredAt, err := parseTime(stringField(m, "occurred_at"))
	if err != nil {
		return nil, err
	}
	ev.OccurredAt = occurredAt

	raw, ok := m["category"].(map[string]any)
	if !ok {
		return ev, nil
	}

	snapshot := &CategorySnapshot{
		Name: stringField(raw, "name"),
	}
	snapshot.IsActive, _ = raw["is_active"].(bool)

	if d, ok := raw["description"].(string); ok {
		snapshot.Description = &d
	}

	if snapshot.CreatedAt, err = parseTime(stringField(raw, "created_at")); err != nil {
		return nil, err
	}

	if snapshot.UpdatedAt, err = parseTime(stringField(raw, "updated_at")); err != nil {
		return nil, err
	}

	if d, ok := raw["deleted_at"].(string); ok {
		deletedAt, err := parseTime(d)
		if err != nil {
			return nil, err
		}
		snapshot.DeletedAt = &deletedAt
	}

	ev.Snapshot = snapshot
	return ev, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode category event time %q: %w", s, err)
	}

	return t, nil
}

func optionalString(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return formatTime(*t)
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
