// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "task_ids", Type: field.TypeJSON},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_grade",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[2]},
			},
		},
	}
	// ChallengesColumns holds the columns for the "challenges" table.
	ChallengesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"daily", "weekly"}},
		{Name: "bucket", Type: field.TypeString},
		{Name: "task_ids", Type: field.TypeJSON},
		{Name: "completed_task_ids", Type: field.TypeJSON},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "bonus_xp", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChallengesTable holds the schema information for the "challenges" table.
	ChallengesTable = &schema.Table{
		Name:       "challenges",
		Columns:    ChallengesColumns,
		PrimaryKey: []*schema.Column{ChallengesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challenge_user_id_kind_bucket",
				Unique:  true,
				Columns: []*schema.Column{ChallengesColumns[1], ChallengesColumns[2], ChallengesColumns[3]},
			},
		},
	}
	// PasswordResetsColumns holds the columns for the "password_resets" table.
	PasswordResetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "used", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PasswordResetsTable holds the schema information for the "password_resets" table.
	PasswordResetsTable = &schema.Table{
		Name:       "password_resets",
		Columns:    PasswordResetsColumns,
		PrimaryKey: []*schema.Column{PasswordResetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "passwordreset_token",
				Unique:  false,
				Columns: []*schema.Column{PasswordResetsColumns[1]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "task_id", Type: field.TypeUUID},
		{Name: "grade", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"normal", "practice"}, Default: "normal"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1], SubmissionsColumns[8]},
			},
			{
				Name:    "submission_user_id_topic",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1], SubmissionsColumns[4]},
			},
			{
				Name:    "submission_task_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "grade", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"multiple_choice", "text_input"}, Default: "text_input"},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Nullable: true},
		{Name: "xp_reward", Type: field.TypeInt, Default: 10},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"leicht", "mittel", "schwer"}, Default: "mittel"},
		{Name: "curriculum", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_grade_topic",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[2]},
			},
			{
				Name:    "task_difficulty",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"student", "admin"}, Default: "student"},
		{Name: "grade", Type: field.TypeInt, Nullable: true},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "badges", Type: field.TypeJSON},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignmentsTable,
		ChallengesTable,
		PasswordResetsTable,
		SubmissionsTable,
		TasksTable,
		UsersTable,
	}
)

func init() {
}
