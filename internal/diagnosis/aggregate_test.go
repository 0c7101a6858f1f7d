package diagnosis

import (
	"testing"

	"github.com/abhisek/gapcheck/internal/questionbank"
)

func TestAggregate_CountsEveryTag(t *testing.T) {
	b := mustBank(t,
		questionbank.Question{ID: "q1", Options: []questionbank.Option{
			{ID: "a", Weight: 0.5, GapTypes: []questionbank.GapType{"processo"}},
		}},
		questionbank.Question{ID: "q2", Options: []questionbank.Option{
			{ID: "a", Weight: 0.25, GapTypes: []questionbank.GapType{"processo", "dados"}},
		}},
	)
	accs := Aggregate(b, NewAnswerMap(Answer{"q1", "a"}, Answer{"q2", "a"}))

	if len(accs) != 2 {
		t.Fatalf("got %d accumulators, want 2", len(accs))
	}

	p := accs["processo"]
	if p.Count != 2 {
		t.Errorf("processo count = %d, want 2", p.Count)
	}
	if p.WeightSum != 0.75 {
		t.Errorf("processo weightSum = %v, want 0.75", p.WeightSum)
	}
	if p.ImpactSum != 1.25 {
		t.Errorf("processo impactSum = %v, want 1.25", p.ImpactSum)
	}

	d := accs["dados"]
	if d.Count != 1 || d.WeightSum != 0.25 || d.ImpactSum != 0.75 {
		t.Errorf("dados = %+v, want count 1, weightSum 0.25, impactSum 0.75", *d)
	}
}

func TestAggregate_UntaggedOptionContributesNothing(t *testing.T) {
	b := twoOptionBank(t)
	accs := Aggregate(b, NewAnswerMap(Answer{"q1", "A"}))
	if len(accs) != 0 {
		t.Errorf("got %d accumulators, want 0", len(accs))
	}
}

func TestAggregate_SkipsUnresolvableAnswers(t *testing.T) {
	b := twoOptionBank(t)
	accs := Aggregate(b, NewAnswerMap(Answer{"q1", "Z"}, Answer{"missing", "B"}))
	if len(accs) != 0 {
		t.Errorf("got %d accumulators, want 0", len(accs))
	}
}

func TestAggregate_EmptyAndNilAnswers(t *testing.T) {
	b := twoOptionBank(t)
	if got := Aggregate(b, NewAnswerMap()); len(got) != 0 {
		t.Errorf("empty map: got %d accumulators", len(got))
	}
	if got := Aggregate(b, nil); len(got) != 0 {
		t.Errorf("nil map: got %d accumulators", len(got))
	}
}
