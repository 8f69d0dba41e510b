// Package importer loads question-bank tasks from admin-supplied CSV
// files. Imports are best effort: bad rows are reported, good rows
// still land.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/store"
)

// Result reports the outcome of one CSV import.
type Result struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// Importer parses task CSVs into the question bank.
type Importer struct {
	tasks   store.TaskRepo
	catalog *curriculum.Catalog
	logger  *slog.Logger
}

func New(tasks store.TaskRepo, catalog *curriculum.Catalog, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{tasks: tasks, catalog: catalog, logger: logger}
}

// ImportCSV reads a header-keyed CSV and inserts one task per data
// row. Required columns: grade, topic, question, correct_answer.
// Optional: task_type, options (pipe-separated), explanation,
// xp_reward, difficulty. Row failures are collected as "Zeile N" errors
// and do not abort the rest of the file.
func (im *Importer) ImportCSV(ctx context.Context, r io.Reader, createdBy string) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv file")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"grade", "topic", "question", "correct_answer"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing csv column %q", required)
		}
	}

	res := &Result{Errors: []string{}}
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Zeile %d: %v", line, err))
			continue
		}
		task, err := im.rowToTask(cols, record, createdBy)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Zeile %d: %v", line, err))
			continue
		}
		if err := im.tasks.Create(ctx, task); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Zeile %d: %v", line, err))
			continue
		}
		res.Imported++
	}

	im.logger.Info("csv import finished", "imported", res.Imported, "errors", len(res.Errors))
	return res, nil
}

func (im *Importer) rowToTask(cols map[string]int, record []string, createdBy string) (*store.Task, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	grade, err := strconv.Atoi(field("grade"))
	if err != nil {
		return nil, fmt.Errorf("ungültige Klasse %q", field("grade"))
	}
	if !im.catalog.ValidGrade(grade) {
		return nil, fmt.Errorf("Klasse muss zwischen 5 und 10 sein, nicht %d", grade)
	}

	topic := field("topic")
	question := field("question")
	answer := field("correct_answer")
	if topic == "" || question == "" || answer == "" {
		return nil, fmt.Errorf("topic, question und correct_answer sind erforderlich")
	}

	taskType := field("task_type")
	switch taskType {
	case "", "free_text", "text_input":
		taskType = "text_input"
	case "multiple_choice":
	default:
		return nil, fmt.Errorf("unbekannter Aufgabentyp %q", taskType)
	}

	var options []string
	if raw := field("options"); raw != "" {
		options = strings.Split(raw, "|")
	}
	if taskType == "multiple_choice" && len(options) < 2 {
		return nil, fmt.Errorf("multiple_choice braucht mindestens 2 Optionen")
	}

	xpReward := 10
	if raw := field("xp_reward"); raw != "" {
		xpReward, err = strconv.Atoi(raw)
		if err != nil || xpReward <= 0 {
			return nil, fmt.Errorf("ungültige XP-Belohnung %q", raw)
		}
	}

	difficulty := field("difficulty")
	switch difficulty {
	case "":
		difficulty = "mittel"
	case "leicht", "mittel", "schwer":
	default:
		return nil, fmt.Errorf("unbekannte Schwierigkeit %q", difficulty)
	}

	return &store.Task{
		ID:            uuid.New(),
		Grade:         grade,
		Topic:         topic,
		Question:      question,
		Type:          taskType,
		Options:       options,
		CorrectAnswer: answer,
		Explanation:   field("explanation"),
		XPReward:      xpReward,
		Difficulty:    difficulty,
		Curriculum:    field("curriculum"),
		CreatedBy:     createdBy,
	}, nil
}
