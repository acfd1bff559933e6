package scenes

import "testing"

func TestTypewriterReveal(t *testing.T) {
	w := NewTypewriter("abc")
	var got []string
	for i := 0; i < 12; i++ {
		w.Tick()
		got = append(got, w.Text())
	}
	// First character on tick 4, then one every 3 ticks.
	want := []string{"", "", "", "a", "a", "a", "ab", "ab", "ab", "abc", "abc", "abc"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: Text = %q, want %q (all: %q)", i+1, got[i], want[i], got)
		}
	}
	if !w.Done() {
		t.Error("Done = false after the whole string")
	}
}

func TestTypewriterUnicode(t *testing.T) {
	w := NewTypewriter("héé")
	w.Ticks = 1
	w.Reset()
	for i := 0; i < 10; i++ {
		w.Tick()
	}
	if w.Text() != "héé" {
		t.Errorf("Text = %q, want %q", w.Text(), "héé")
	}
}

func TestTypewriterReset(t *testing.T) {
	w := NewTypewriter("xy")
	for i := 0; i < 10; i++ {
		w.Tick()
	}
	w.Reset()
	if w.Text() != "" || w.Done() {
		t.Errorf("after Reset: Text = %q, Done = %v", w.Text(), w.Done())
	}
}
