package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Submission records one answer attempt. Rows are append-only; the
// per-user aggregates that drive recommendations are derived from them.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("task_id", uuid.UUID{}),
		field.Int("grade"),
		field.String("topic").
			NotEmpty(),
		field.String("answer"),
		field.Bool("correct"),
		field.Enum("mode").
			Values("normal", "practice").
			Default("normal").
			Comment("Practice submissions award no XP and are excluded from challenge progress"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "topic"),
		index.Fields("task_id"),
	}
}
