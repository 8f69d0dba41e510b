// Package evaluate decides whether a submitted answer matches a task's
// stored solution.
package evaluate

import "strings"

// Result is the outcome of checking one answer.
type Result struct {
	Correct       bool
	CorrectAnswer string
	Explanation   string
}

// Check compares the submitted answer against the task's stored answer
// using trimmed, case-insensitive string equality. Deliberately no
// numeric or fraction equivalence: "0.5" does not match "1/2". Content
// authors encode acceptable forms in the stored answer.
func Check(submitted, correct, explanation string) Result {
	return Result{
		Correct:       normalize(submitted) == normalize(correct),
		CorrectAnswer: correct,
		Explanation:   explanation,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
