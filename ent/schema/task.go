package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task is a question-bank entry. The bank is append-only at runtime:
// tasks are seeded or imported by admins, never mutated by students.
type Task struct {
	ent.Schema
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Int("grade").
			Range(5, 10),
		field.String("topic").
			NotEmpty(),
		field.String("question").
			NotEmpty(),
		field.Enum("type").
			Values("multiple_choice", "text_input").
			Default("text_input"),
		field.JSON("options", []string{}).
			Optional().
			Comment("Choice labels for multiple_choice tasks"),
		field.String("correct_answer").
			NotEmpty(),
		field.String("explanation").
			Optional(),
		field.Int("xp_reward").
			Default(10).
			Positive(),
		field.Enum("difficulty").
			Values("leicht", "mittel", "schwer").
			Default("mittel"),
		field.String("curriculum").
			Optional().
			Comment("Curriculum tag, e.g. nrw-g8"),
		field.String("created_by").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("grade", "topic"),
		index.Fields("difficulty"),
	}
}
