package browse

import "testing"

// discriminatorCount reports how many discriminators are set, independent of
// Mode's priority resolution.
func discriminatorCount(q ViewQuery) int {
	n := 0
	if q.Search != "" {
		n++
	}
	if q.Letter != "" {
		n++
	}
	if q.Category != "" {
		n++
	}
	return n
}

func TestTransitions_SingleDiscriminator(t *testing.T) {
	q := NewViewQuery(10)

	transitions := []struct {
		name  string
		apply func(ViewQuery) ViewQuery
		want  Mode
	}{
		{"search", func(q ViewQuery) ViewQuery { return q.WithSearch("margarita") }, ModeSearch},
		{"letter", func(q ViewQuery) ViewQuery { return q.WithLetter("a") }, ModeLetter},
		{"category", func(q ViewQuery) ViewQuery { return q.WithCategory("Shot") }, ModeCategory},
		{"search again", func(q ViewQuery) ViewQuery { return q.WithSearch("gin") }, ModeSearch},
		{"clear search", func(q ViewQuery) ViewQuery { return q.WithSearch("") }, ModeDefault},
	}

	for _, tr := range transitions {
		q = q.Next() // move off page one so the reset is observable
		q = tr.apply(q)
		if n := discriminatorCount(q); n > 1 {
			t.Errorf("%s: %d discriminators set, want at most 1", tr.name, n)
		}
		if q.Mode() != tr.want {
			t.Errorf("%s: mode = %v, want %v", tr.name, q.Mode(), tr.want)
		}
		if q.Index != 0 {
			t.Errorf("%s: index = %d, want 0 after discriminator change", tr.name, q.Index)
		}
	}
}

func TestWithSearch_Trims(t *testing.T) {
	q := NewViewQuery(10).WithSearch("  margarita  ")
	if q.Search != "margarita" {
		t.Errorf("Search = %q, want %q", q.Search, "margarita")
	}

	// All-whitespace input clears the search entirely.
	q = q.WithSearch("   ")
	if q.Mode() != ModeDefault {
		t.Errorf("mode = %v, want ModeDefault after clearing", q.Mode())
	}
}

func TestNextPrev_OffsetBounds(t *testing.T) {
	q := NewViewQuery(10)

	if q = q.Next(); q.Index != 10 {
		t.Errorf("after Next: index = %d, want 10", q.Index)
	}
	if q = q.Next(); q.Index != 20 {
		t.Errorf("after second Next: index = %d, want 20", q.Index)
	}
	if q = q.Prev(); q.Index != 10 {
		t.Errorf("after Prev: index = %d, want 10", q.Index)
	}
	if q = q.Prev(); q.Index != 0 {
		t.Errorf("after Prev to start: index = %d, want 0", q.Index)
	}

	// Prev never drives the offset negative, even from a misaligned one.
	q.Index = 3
	if q = q.Prev(); q.Index != 0 {
		t.Errorf("Prev from misaligned offset: index = %d, want 0", q.Index)
	}
}

func TestMode_PriorityOnMalformedQuery(t *testing.T) {
	// Hand-built query with every discriminator set: letter wins, then
	// category, then search.
	q := ViewQuery{Search: "gin", Letter: "a", Category: "Shot", Limit: 10}
	if q.Mode() != ModeLetter {
		t.Errorf("mode = %v, want ModeLetter", q.Mode())
	}
	q.Letter = ""
	if q.Mode() != ModeCategory {
		t.Errorf("mode = %v, want ModeCategory", q.Mode())
	}
	q.Category = ""
	if q.Mode() != ModeSearch {
		t.Errorf("mode = %v, want ModeSearch", q.Mode())
	}
}
