package locale

import (
	"fmt"
	"testing"

	"github.com/leonelquinteros/gotext"
)

func TestLoad_TranslatesKeys(t *testing.T) {
	Load()
	Load()

	if got := gotext.Get("DIFFICULTY_HARD"); got != "Hard" {
		t.Errorf("Get(DIFFICULTY_HARD) = %q, want \"Hard\"", got)
	}
	if got := fmt.Sprintf(gotext.Get("PREVIEW_TITLE"), 3, 4, 9); got != "Maze 3x4 seed 9" {
		t.Errorf("PREVIEW_TITLE = %q, want \"Maze 3x4 seed 9\"", got)
	}
	if got := fmt.Sprintf(gotext.Get("SUMMARY_PASSAGES"), 11, 2); got != "11 passages, 2 dead ends" {
		t.Errorf("SUMMARY_PASSAGES = %q, want \"11 passages, 2 dead ends\"", got)
	}
}
