package interpreter

import (
	"errors"
	"testing"
	"time"

	"github.com/Waghib/Speech-To-Plan-reminder/pkg/datemath"
)

func newTestExtractor(t *testing.T, now time.Time) *Extractor {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return NewExtractor(p, func() time.Time { return now })
}

func TestExtract_Create(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	e := newTestExtractor(t, now)

	cases := []struct {
		name    string
		in      string
		title   string
		wantDue *time.Time
	}{
		{
			name:  "bare add",
			in:    "add milk",
			title: "Milk",
		},
		{
			name:  "add with article",
			in:    "add a dentist appointment",
			title: "Dentist appointment",
		},
		{
			name:    "remind me to with trailing date",
			in:      "Remind me to call the dentist tomorrow",
			title:   "Call the dentist",
			wantDue: datePtr(2025, 6, 2),
		},
		{
			name:    "date in the middle",
			in:      "remind me to tomorrow buy groceries",
			title:   "Buy groceries",
			wantDue: datePtr(2025, 6, 2),
		},
		{
			name:  "i have a",
			in:    "I have a team meeting",
			title: "Team meeting",
		},
		{
			name:    "schedule next week",
			in:      "schedule a doctor visit next week",
			title:   "Doctor visit",
			wantDue: datePtr(2025, 6, 8),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			act, err := e.Extract(tc.in)
			if err != nil {
				t.Fatalf("Extract(%q): %v", tc.in, err)
			}
			if act.Kind != KindCreate {
				t.Fatalf("kind = %v, want %v", act.Kind, KindCreate)
			}
			if act.Title != tc.title {
				t.Errorf("title = %q, want %q", act.Title, tc.title)
			}
			if tc.wantDue == nil {
				if act.DueDate != nil {
					t.Errorf("due = %v, want none", act.DueDate)
				}
			} else if act.DueDate == nil || !act.DueDate.Equal(*tc.wantDue) {
				t.Errorf("due = %v, want %v", act.DueDate, tc.wantDue)
			}
		})
	}
}

func TestExtract_CreateKeywordWindow(t *testing.T) {
	e := newTestExtractor(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		in    string
		title string
	}{
		{"so I was thinking there is an office meeting I should add", "Office meeting"},
		{"there is a big meeting and you should add it", "Meeting"},
		{"you know what, add that I go to office", "Go to office"},
	}

	for _, tc := range cases {
		act, err := e.Extract(tc.in)
		if err != nil {
			t.Fatalf("Extract(%q): %v", tc.in, err)
		}
		if act.Title != tc.title {
			t.Errorf("Extract(%q) title = %q, want %q", tc.in, act.Title, tc.title)
		}
		if !act.LowConfidence {
			t.Errorf("Extract(%q): expected LowConfidence", tc.in)
		}
	}
}

func TestExtract_CreateFallbackTitle(t *testing.T) {
	e := newTestExtractor(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	act, err := e.Extract("add tomorrow")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if act.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", act.Title, DefaultTitle)
	}
	if !act.LowConfidence {
		t.Error("expected LowConfidence for default title")
	}
	if act.DueDate == nil {
		t.Error("expected due date to survive the fallback")
	}
}

func TestExtract_Delete(t *testing.T) {
	e := newTestExtractor(t, time.Now())

	cases := []struct {
		in   string
		name string
	}{
		{"delete the groceries task", "groceries"},
		{"remove my dentist appointment todo", "dentist appointment"},
		{"cancel the meeting", "meeting"},
	}

	for _, tc := range cases {
		act, err := e.Extract(tc.in)
		if err != nil {
			t.Fatalf("Extract(%q): %v", tc.in, err)
		}
		if act.Kind != KindDeleteByName {
			t.Fatalf("Extract(%q) kind = %v, want delete", tc.in, act.Kind)
		}
		if act.Name != tc.name {
			t.Errorf("Extract(%q) name = %q, want %q", tc.in, act.Name, tc.name)
		}
	}
}

func TestExtract_DeleteBeatsCreate(t *testing.T) {
	e := newTestExtractor(t, time.Now())

	// "add" is present, but deletion verbs win.
	act, err := e.Extract("remove the task I asked you to add")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if act.Kind != KindDeleteByName {
		t.Errorf("kind = %v, want delete", act.Kind)
	}
}

func TestExtract_List(t *testing.T) {
	e := newTestExtractor(t, time.Now())

	for _, in := range []string{"show me everything", "list them", "what are my tasks"} {
		act, err := e.Extract(in)
		if err != nil {
			t.Fatalf("Extract(%q): %v", in, err)
		}
		if act.Kind != KindList {
			t.Errorf("Extract(%q) kind = %v, want list", in, act.Kind)
		}
	}
}

func TestExtract_NoMatch(t *testing.T) {
	e := newTestExtractor(t, time.Now())

	for _, in := range []string{"", "   ", "how are you doing", "what's the weather like"} {
		_, err := e.Extract(in)
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("Extract(%q): expected ErrNoMatch, got %v", in, err)
		}
	}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
