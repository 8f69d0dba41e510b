// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mathevilla/server/ent/assignment"
	"github.com/mathevilla/server/ent/challenge"
	"github.com/mathevilla/server/ent/passwordreset"
	"github.com/mathevilla/server/ent/schema"
	"github.com/mathevilla/server/ent/submission"
	"github.com/mathevilla/server/ent/task"
	"github.com/mathevilla/server/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescTitle is the schema descriptor for title field.
	assignmentDescTitle := assignmentFields[1].Descriptor()
	// assignment.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	assignment.TitleValidator = assignmentDescTitle.Validators[0].(func(string) error)
	// assignmentDescGrade is the schema descriptor for grade field.
	assignmentDescGrade := assignmentFields[2].Descriptor()
	// assignment.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	assignment.GradeValidator = assignmentDescGrade.Validators[0].(func(int) error)
	// assignmentDescCreatedBy is the schema descriptor for created_by field.
	assignmentDescCreatedBy := assignmentFields[6].Descriptor()
	// assignment.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	assignment.CreatedByValidator = assignmentDescCreatedBy.Validators[0].(func(string) error)
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentFields[7].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	// assignmentDescID is the schema descriptor for id field.
	assignmentDescID := assignmentFields[0].Descriptor()
	// assignment.DefaultID holds the default value on creation for the id field.
	assignment.DefaultID = assignmentDescID.Default.(func() uuid.UUID)
	challengeFields := schema.Challenge{}.Fields()
	_ = challengeFields
	// challengeDescBucket is the schema descriptor for bucket field.
	challengeDescBucket := challengeFields[3].Descriptor()
	// challenge.BucketValidator is a validator for the "bucket" field. It is called by the builders before save.
	challenge.BucketValidator = challengeDescBucket.Validators[0].(func(string) error)
	// challengeDescCompletedTaskIds is the schema descriptor for completed_task_ids field.
	challengeDescCompletedTaskIds := challengeFields[5].Descriptor()
	// challenge.DefaultCompletedTaskIds holds the default value on creation for the completed_task_ids field.
	challenge.DefaultCompletedTaskIds = challengeDescCompletedTaskIds.Default.([]string)
	// challengeDescCompleted is the schema descriptor for completed field.
	challengeDescCompleted := challengeFields[6].Descriptor()
	// challenge.DefaultCompleted holds the default value on creation for the completed field.
	challenge.DefaultCompleted = challengeDescCompleted.Default.(bool)
	// challengeDescBonusXp is the schema descriptor for bonus_xp field.
	challengeDescBonusXp := challengeFields[7].Descriptor()
	// challenge.DefaultBonusXp holds the default value on creation for the bonus_xp field.
	challenge.DefaultBonusXp = challengeDescBonusXp.Default.(int)
	// challengeDescCreatedAt is the schema descriptor for created_at field.
	challengeDescCreatedAt := challengeFields[8].Descriptor()
	// challenge.DefaultCreatedAt holds the default value on creation for the created_at field.
	challenge.DefaultCreatedAt = challengeDescCreatedAt.Default.(func() time.Time)
	// challengeDescID is the schema descriptor for id field.
	challengeDescID := challengeFields[0].Descriptor()
	// challenge.DefaultID holds the default value on creation for the id field.
	challenge.DefaultID = challengeDescID.Default.(func() uuid.UUID)
	passwordresetFields := schema.PasswordReset{}.Fields()
	_ = passwordresetFields
	// passwordresetDescToken is the schema descriptor for token field.
	passwordresetDescToken := passwordresetFields[1].Descriptor()
	// passwordreset.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	passwordreset.TokenValidator = passwordresetDescToken.Validators[0].(func(string) error)
	// passwordresetDescEmail is the schema descriptor for email field.
	passwordresetDescEmail := passwordresetFields[3].Descriptor()
	// passwordreset.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	passwordreset.EmailValidator = passwordresetDescEmail.Validators[0].(func(string) error)
	// passwordresetDescUsed is the schema descriptor for used field.
	passwordresetDescUsed := passwordresetFields[5].Descriptor()
	// passwordreset.DefaultUsed holds the default value on creation for the used field.
	passwordreset.DefaultUsed = passwordresetDescUsed.Default.(bool)
	// passwordresetDescCreatedAt is the schema descriptor for created_at field.
	passwordresetDescCreatedAt := passwordresetFields[6].Descriptor()
	// passwordreset.DefaultCreatedAt holds the default value on creation for the created_at field.
	passwordreset.DefaultCreatedAt = passwordresetDescCreatedAt.Default.(func() time.Time)
	// passwordresetDescID is the schema descriptor for id field.
	passwordresetDescID := passwordresetFields[0].Descriptor()
	// passwordreset.DefaultID holds the default value on creation for the id field.
	passwordreset.DefaultID = passwordresetDescID.Default.(func() uuid.UUID)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescTopic is the schema descriptor for topic field.
	submissionDescTopic := submissionFields[4].Descriptor()
	// submission.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	submission.TopicValidator = submissionDescTopic.Validators[0].(func(string) error)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[8].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionFields[0].Descriptor()
	// submission.DefaultID holds the default value on creation for the id field.
	submission.DefaultID = submissionDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescGrade is the schema descriptor for grade field.
	taskDescGrade := taskFields[1].Descriptor()
	// task.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	task.GradeValidator = taskDescGrade.Validators[0].(func(int) error)
	// taskDescTopic is the schema descriptor for topic field.
	taskDescTopic := taskFields[2].Descriptor()
	// task.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	task.TopicValidator = taskDescTopic.Validators[0].(func(string) error)
	// taskDescQuestion is the schema descriptor for question field.
	taskDescQuestion := taskFields[3].Descriptor()
	// task.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	task.QuestionValidator = taskDescQuestion.Validators[0].(func(string) error)
	// taskDescCorrectAnswer is the schema descriptor for correct_answer field.
	taskDescCorrectAnswer := taskFields[6].Descriptor()
	// task.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	task.CorrectAnswerValidator = taskDescCorrectAnswer.Validators[0].(func(string) error)
	// taskDescXpReward is the schema descriptor for xp_reward field.
	taskDescXpReward := taskFields[8].Descriptor()
	// task.DefaultXpReward holds the default value on creation for the xp_reward field.
	task.DefaultXpReward = taskDescXpReward.Default.(int)
	// task.XpRewardValidator is a validator for the "xp_reward" field. It is called by the builders before save.
	task.XpRewardValidator = taskDescXpReward.Validators[0].(func(int) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[12].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[3].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescXp is the schema descriptor for xp field.
	userDescXp := userFields[6].Descriptor()
	// user.DefaultXp holds the default value on creation for the xp field.
	user.DefaultXp = userDescXp.Default.(int)
	// user.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	user.XpValidator = userDescXp.Validators[0].(func(int) error)
	// userDescLevel is the schema descriptor for level field.
	userDescLevel := userFields[7].Descriptor()
	// user.DefaultLevel holds the default value on creation for the level field.
	user.DefaultLevel = userDescLevel.Default.(int)
	// user.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	user.LevelValidator = userDescLevel.Validators[0].(func(int) error)
	// userDescCorrectCount is the schema descriptor for correct_count field.
	userDescCorrectCount := userFields[8].Descriptor()
	// user.DefaultCorrectCount holds the default value on creation for the correct_count field.
	user.DefaultCorrectCount = userDescCorrectCount.Default.(int)
	// user.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	user.CorrectCountValidator = userDescCorrectCount.Validators[0].(func(int) error)
	// userDescBadges is the schema descriptor for badges field.
	userDescBadges := userFields[9].Descriptor()
	// user.DefaultBadges holds the default value on creation for the badges field.
	user.DefaultBadges = userDescBadges.Default.([]string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[11].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
