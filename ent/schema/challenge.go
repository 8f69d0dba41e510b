package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Challenge is a daily or weekly task set assigned to one user. The
// (user_id, kind, bucket) key makes re-requesting the current challenge
// idempotent: the same row is returned for the whole period.
type Challenge struct {
	ent.Schema
}

func (Challenge) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.Enum("kind").
			Values("daily", "weekly"),
		field.String("bucket").
			NotEmpty().
			Comment("Period key: 2006-01-02 for daily, ISO year-Wnn for weekly"),
		field.JSON("task_ids", []string{}),
		field.JSON("completed_task_ids", []string{}).
			Default([]string{}),
		field.Bool("completed").
			Default(false),
		field.Int("bonus_xp").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Challenge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "kind", "bucket").
			Unique(),
	}
}
