package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User is a registered learner or admin account.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.String("name").
			NotEmpty(),
		field.Enum("role").
			Values("student", "admin").
			Default("student"),
		field.Int("grade").
			Optional().
			Nillable().
			Comment("School grade 5-10; unset for admins"),
		field.Int("xp").
			Default(0).
			NonNegative(),
		field.Int("level").
			Default(1).
			Min(1).
			Comment("Always xp/100 + 1"),
		field.Int("correct_count").
			Default(0).
			NonNegative().
			Comment("Lifetime correct answers, bumped in the same tx as each submission"),
		field.JSON("badges", []string{}).
			Default([]string{}),
		field.JSON("features", map[string]bool{}).
			Optional().
			Comment("Per-user feature flag overrides; catalog defaults apply when empty"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("role"),
	}
}
