package batch

import (
	"reflect"
	"testing"

	"codeberg.org/snonux/koelner/internal/testutil"
)

func TestReadWordFile(t *testing.T) {
	path := testutil.CreateWordList(t, t.TempDir(),
		"Müller",
		"",
		"# surnames below",
		"  Schmidt  ",
		"Meyer",
	)

	words, err := ReadWordFile(path)
	if err != nil {
		t.Fatalf("ReadWordFile failed: %v", err)
	}

	want := []string{"Müller", "Schmidt", "Meyer"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("Expected %v, got %v", want, words)
	}
}

func TestReadWordFileEmpty(t *testing.T) {
	path := testutil.CreateWordList(t, t.TempDir())

	words, err := ReadWordFile(path)
	if err != nil {
		t.Fatalf("ReadWordFile failed: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("Expected no words, got %v", words)
	}
}

func TestReadWordFileMissing(t *testing.T) {
	if _, err := ReadWordFile("/nonexistent/words.txt"); err == nil {
		t.Error("Expected error for missing file")
	}
}
