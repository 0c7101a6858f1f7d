package questionbank

import (
	"testing"
)

func TestDefaultBankValid(t *testing.T) {
	if err := validateQuestions(seedQuestions); err != nil {
		t.Fatalf("seed questions invalid: %v", err)
	}
}

func TestDefaultBankLen(t *testing.T) {
	b := Default()
	if b.Len() != len(seedQuestions) {
		t.Errorf("Len() = %d, want %d", b.Len(), len(seedQuestions))
	}
	if b.Name() != "default" {
		t.Errorf("Name() = %q, want %q", b.Name(), "default")
	}
}

func TestDefaultBankUsesOnlyKnownGapTypes(t *testing.T) {
	known := make(map[GapType]bool)
	for _, g := range KnownGapTypes() {
		known[g] = true
	}
	for _, g := range Default().GapTypes() {
		if !known[g] {
			t.Errorf("default bank references undescribed gap type %q", g)
		}
	}
}

func TestDefaultBankHasIdealOption(t *testing.T) {
	// Every question offers at least one answer that implicates no gap.
	for _, q := range Default().Questions() {
		found := false
		for _, o := range q.Options {
			if o.Weight == 1 && len(o.GapTypes) == 0 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("question %q has no ideal option", q.ID)
		}
	}
}

func TestBankLookup(t *testing.T) {
	b := Default()
	first := b.At(0)

	q, err := b.Question(first.ID)
	if err != nil {
		t.Fatalf("Question(%q): %v", first.ID, err)
	}
	if q.Text != first.Text {
		t.Errorf("Question text = %q, want %q", q.Text, first.Text)
	}
	if b.Index(first.ID) != 0 {
		t.Errorf("Index(%q) = %d, want 0", first.ID, b.Index(first.ID))
	}

	if _, err := b.Question("nope"); err == nil {
		t.Error("expected error for unknown question")
	}
	if b.Index("nope") != -1 {
		t.Errorf("Index(nope) = %d, want -1", b.Index("nope"))
	}

	opt, ok := b.Option(first.ID, first.Options[1].ID)
	if !ok {
		t.Fatal("expected option to resolve")
	}
	if opt.Weight != first.Options[1].Weight {
		t.Errorf("option weight = %v, want %v", opt.Weight, first.Options[1].Weight)
	}
	if _, ok := b.Option(first.ID, "nope"); ok {
		t.Error("expected unknown option to fail")
	}
	if _, ok := b.Option("nope", first.Options[0].ID); ok {
		t.Error("expected unknown question to fail")
	}
}

func TestNewClonesInput(t *testing.T) {
	qs := []Question{{
		ID:   "q1",
		Text: "Q1",
		Options: []Option{
			{ID: "a", Text: "A", Weight: 0, GapTypes: []GapType{GapProcess}},
		},
	}}
	b, err := New("t", qs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	qs[0].Options[0].GapTypes[0] = GapData
	qs[0].Options[0].Weight = 1

	opt, _ := b.Option("q1", "a")
	if opt.Weight != 0 {
		t.Errorf("weight changed through caller slice: %v", opt.Weight)
	}
	if !opt.HasGap(GapProcess) {
		t.Error("gap types changed through caller slice")
	}
}

func TestGapTypesSorted(t *testing.T) {
	b, err := New("t", []Question{{
		ID: "q1",
		Options: []Option{
			{ID: "a", Weight: 0, GapTypes: []GapType{"zeta", "alpha"}},
			{ID: "b", Weight: 1, GapTypes: []GapType{"alpha", "mid"}},
		},
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := b.GapTypes()
	want := []GapType{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("GapTypes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GapTypes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestQuestionOptionIndex(t *testing.T) {
	q := Question{ID: "q", Options: []Option{{ID: "a"}, {ID: "b"}}}
	if q.OptionIndex("b") != 1 {
		t.Errorf("OptionIndex(b) = %d, want 1", q.OptionIndex("b"))
	}
	if q.OptionIndex("c") != -1 {
		t.Errorf("OptionIndex(c) = %d, want -1", q.OptionIndex("c"))
	}
}
