// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mathevilla/server/ent/predicate"
	"github.com/mathevilla/server/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *TaskUpdate) SetGrade(v int) *TaskUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableGrade(v *int) *TaskUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *TaskUpdate) AddGrade(v int) *TaskUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TaskUpdate) SetTopic(v string) *TaskUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTopic(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TaskUpdate) SetQuestion(v string) *TaskUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableQuestion(v *string) *TaskUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TaskUpdate) SetType(v task.Type) *TaskUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableType(v *task.Type) *TaskUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *TaskUpdate) SetOptions(v []string) *TaskUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *TaskUpdate) AppendOptions(v []string) *TaskUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *TaskUpdate) ClearOptions() *TaskUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *TaskUpdate) SetCorrectAnswer(v string) *TaskUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCorrectAnswer(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *TaskUpdate) SetExplanation(v string) *TaskUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableExplanation(v *string) *TaskUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *TaskUpdate) ClearExplanation() *TaskUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *TaskUpdate) SetXpReward(v int) *TaskUpdate {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableXpReward(v *int) *TaskUpdate {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *TaskUpdate) AddXpReward(v int) *TaskUpdate {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TaskUpdate) SetDifficulty(v task.Difficulty) *TaskUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDifficulty(v *task.Difficulty) *TaskUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCurriculum sets the "curriculum" field.
func (_u *TaskUpdate) SetCurriculum(v string) *TaskUpdate {
	_u.mutation.SetCurriculum(v)
	return _u
}

// SetNillableCurriculum sets the "curriculum" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurriculum(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCurriculum(*v)
	}
	return _u
}

// ClearCurriculum clears the value of the "curriculum" field.
func (_u *TaskUpdate) ClearCurriculum() *TaskUpdate {
	_u.mutation.ClearCurriculum()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *TaskUpdate) SetCreatedBy(v string) *TaskUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatedBy(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *TaskUpdate) ClearCreatedBy() *TaskUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := task.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Task.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := task.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Task.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := task.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Task.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := task.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Task.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := task.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Task.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpReward(); ok {
		if err := task.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "Task.xp_reward": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := task.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Task.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(task.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(task.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(task.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(task.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(task.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(task.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(task.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(task.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(task.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(task.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(task.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(task.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(task.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Curriculum(); ok {
		_spec.SetField(task.FieldCurriculum, field.TypeString, value)
	}
	if _u.mutation.CurriculumCleared() {
		_spec.ClearField(task.FieldCurriculum, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(task.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(task.FieldCreatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetGrade sets the "grade" field.
func (_u *TaskUpdateOne) SetGrade(v int) *TaskUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableGrade(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *TaskUpdateOne) AddGrade(v int) *TaskUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TaskUpdateOne) SetTopic(v string) *TaskUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTopic(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TaskUpdateOne) SetQuestion(v string) *TaskUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableQuestion(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TaskUpdateOne) SetType(v task.Type) *TaskUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableType(v *task.Type) *TaskUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *TaskUpdateOne) SetOptions(v []string) *TaskUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *TaskUpdateOne) AppendOptions(v []string) *TaskUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *TaskUpdateOne) ClearOptions() *TaskUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *TaskUpdateOne) SetCorrectAnswer(v string) *TaskUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCorrectAnswer(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *TaskUpdateOne) SetExplanation(v string) *TaskUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableExplanation(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *TaskUpdateOne) ClearExplanation() *TaskUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *TaskUpdateOne) SetXpReward(v int) *TaskUpdateOne {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableXpReward(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *TaskUpdateOne) AddXpReward(v int) *TaskUpdateOne {
	_u.mutation.AddXpReward(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TaskUpdateOne) SetDifficulty(v task.Difficulty) *TaskUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDifficulty(v *task.Difficulty) *TaskUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCurriculum sets the "curriculum" field.
func (_u *TaskUpdateOne) SetCurriculum(v string) *TaskUpdateOne {
	_u.mutation.SetCurriculum(v)
	return _u
}

// SetNillableCurriculum sets the "curriculum" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurriculum(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCurriculum(*v)
	}
	return _u
}

// ClearCurriculum clears the value of the "curriculum" field.
func (_u *TaskUpdateOne) ClearCurriculum() *TaskUpdateOne {
	_u.mutation.ClearCurriculum()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *TaskUpdateOne) SetCreatedBy(v string) *TaskUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatedBy(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *TaskUpdateOne) ClearCreatedBy() *TaskUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := task.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Task.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := task.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Task.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := task.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Task.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := task.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Task.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := task.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Task.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpReward(); ok {
		if err := task.XpRewardValidator(v); err != nil {
			return &ValidationError{Name: "xp_reward", err: fmt.Errorf(`ent: validator failed for field "Task.xp_reward": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := task.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Task.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(task.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(task.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(task.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(task.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(task.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(task.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(task.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(task.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(task.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(task.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(task.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(task.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(task.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Curriculum(); ok {
		_spec.SetField(task.FieldCurriculum, field.TypeString, value)
	}
	if _u.mutation.CurriculumCleared() {
		_spec.ClearField(task.FieldCurriculum, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(task.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(task.FieldCreatedBy, field.TypeString)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
