package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PasswordReset is a single-use reset token.
type PasswordReset struct {
	ent.Schema
}

func (PasswordReset) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("token").
			NotEmpty().
			Unique().
			Sensitive(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("email").
			NotEmpty(),
		field.Time("expires_at"),
		field.Bool("used").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PasswordReset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("token"),
	}
}
