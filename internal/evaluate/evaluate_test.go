package evaluate

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		{"exact match", "42", "42", true},
		{"surrounding whitespace", "  42  ", "42", true},
		{"case folded", "DREIECK", "Dreieck", true},
		{"mixed case and space", " x = 5 ", "X = 5", true},
		{"wrong answer", "41", "42", false},
		{"no numeric equivalence", "0.5", "1/2", false},
		{"no decimal comma equivalence", "4,2", "4.2", false},
		{"fraction form must match", "2/4", "1/2", false},
		{"empty submission", "", "42", false},
		{"whitespace only submission", "   ", "42", false},
		{"internal whitespace differs", "3 / 8", "3/8", false},
		{"umlaut answer", "flächeninhalt", "Flächeninhalt", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.submitted, tt.correct, "why")
			if got.Correct != tt.want {
				t.Errorf("Check(%q, %q).Correct = %v, want %v",
					tt.submitted, tt.correct, got.Correct, tt.want)
			}
			if got.CorrectAnswer != tt.correct {
				t.Errorf("CorrectAnswer = %q, want %q", got.CorrectAnswer, tt.correct)
			}
			if got.Explanation != "why" {
				t.Errorf("Explanation = %q", got.Explanation)
			}
		})
	}
}
