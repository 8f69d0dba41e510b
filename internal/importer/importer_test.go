package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/store"
)

type fakeTasks struct {
	created []*store.Task
}

func (f *fakeTasks) Create(_ context.Context, t *store.Task) error {
	f.created = append(f.created, t)
	return nil
}

func (f *fakeTasks) CreateBulk(_ context.Context, ts []*store.Task) (int, error) {
	f.created = append(f.created, ts...)
	return len(ts), nil
}

func (f *fakeTasks) ByID(_ context.Context, _ uuid.UUID) (*store.Task, error) {
	return nil, store.ErrNotFound
}

func (f *fakeTasks) List(_ context.Context, _ store.TaskFilter) ([]*store.Task, error) {
	return f.created, nil
}

func (f *fakeTasks) Update(_ context.Context, _ *store.Task) error { return nil }
func (f *fakeTasks) Delete(_ context.Context, _ uuid.UUID) error   { return nil }
func (f *fakeTasks) Count(_ context.Context) (int, error)          { return len(f.created), nil }

const sampleCSV = `grade,topic,question,task_type,options,correct_answer,explanation,xp_reward,difficulty
5,Brüche,Was ist 1/2 + 1/4?,free_text,,3/4,Gleichnamig machen,15,mittel
7,Prozentrechnung,Was sind 25% von 80?,multiple_choice,10|20|25|40,20,25% ist ein Viertel,10,leicht
`

func TestImportCSV(t *testing.T) {
	tasks := &fakeTasks{}
	im := New(tasks, curriculum.Default(), nil)

	res, err := im.ImportCSV(context.Background(), strings.NewReader(sampleCSV), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Empty(t, res.Errors)
	require.Len(t, tasks.created, 2)

	first := tasks.created[0]
	assert.Equal(t, 5, first.Grade)
	assert.Equal(t, "Brüche", first.Topic)
	assert.Equal(t, "text_input", first.Type, "free_text maps to text_input")
	assert.Equal(t, "3/4", first.CorrectAnswer)
	assert.Equal(t, 15, first.XPReward)
	assert.Equal(t, "admin-1", first.CreatedBy)

	second := tasks.created[1]
	assert.Equal(t, "multiple_choice", second.Type)
	assert.Equal(t, []string{"10", "20", "25", "40"}, second.Options)
	assert.Equal(t, "leicht", second.Difficulty)
}

func TestImportCSVDefaults(t *testing.T) {
	tasks := &fakeTasks{}
	im := New(tasks, curriculum.Default(), nil)

	csv := "grade,topic,question,correct_answer\n6,Geometrie,Wie viele Ecken hat ein Quadrat?,4\n"
	res, err := im.ImportCSV(context.Background(), strings.NewReader(csv), "admin-1")
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported)

	task := tasks.created[0]
	assert.Equal(t, "text_input", task.Type)
	assert.Equal(t, 10, task.XPReward)
	assert.Equal(t, "mittel", task.Difficulty)
}

func TestImportCSVCollectsRowErrors(t *testing.T) {
	tasks := &fakeTasks{}
	im := New(tasks, curriculum.Default(), nil)

	csv := strings.Join([]string{
		"grade,topic,question,correct_answer,difficulty",
		"5,Brüche,Frage eins,1,mittel",
		"elf,Brüche,Frage zwei,2,mittel",
		"12,Brüche,Frage drei,3,mittel",
		"6,Brüche,Frage vier,4,extrem",
		"6,Brüche,Frage fünf,5,leicht",
	}, "\n")

	res, err := im.ImportCSV(context.Background(), strings.NewReader(csv), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	require.Len(t, res.Errors, 3)
	assert.Contains(t, res.Errors[0], "Zeile 2")
	assert.Contains(t, res.Errors[1], "Zeile 3")
	assert.Contains(t, res.Errors[2], "Zeile 4")
}

func TestImportCSVMissingColumn(t *testing.T) {
	im := New(&fakeTasks{}, curriculum.Default(), nil)
	_, err := im.ImportCSV(context.Background(), strings.NewReader("grade,topic\n5,Brüche\n"), "admin-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question")
}

func TestImportCSVRejectsBadMultipleChoice(t *testing.T) {
	tasks := &fakeTasks{}
	im := New(tasks, curriculum.Default(), nil)

	csv := "grade,topic,question,task_type,options,correct_answer\n5,Brüche,Frage?,multiple_choice,nur-eine,x\n"
	res, err := im.ImportCSV(context.Background(), strings.NewReader(csv), "admin-1")
	require.NoError(t, err)
	assert.Zero(t, res.Imported)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Optionen")
}
