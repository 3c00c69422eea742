package interpreter

import (
	"strings"
	"time"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/model"
)

// titleDateIndicators are stripped from titles before comparison so that
// "call mom tomorrow" and "call mom" compare equal.
var titleDateIndicators = []string{
	"tomorrow", "today", "next week", "next month",
	"on monday", "on tuesday", "on wednesday", "on thursday",
	"on friday", "on saturday", "on sunday",
}

// fillerPhrases and leadingParticles are each stripped at most once, in
// table order.
var fillerPhrases = []string{
	"i have ", "i need to ", "remind me to ", "i want to ", "i should ", "i must ",
}

var leadingParticles = []string{
	"a ", "an ", "the ", "to ", "for ", "at ", "in ", "on ",
}

// NormalizeTitle reduces a task title to its comparable core. The function is
// idempotent: NormalizeTitle(NormalizeTitle(s)) == NormalizeTitle(s).
func NormalizeTitle(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	for _, ind := range titleDateIndicators {
		s = strings.ReplaceAll(s, ind, " ")
	}
	s = collapseSpaces(s)

	for _, f := range fillerPhrases {
		if strings.HasPrefix(s, f) {
			s = strings.TrimSpace(s[len(f):])
			break
		}
	}
	for _, p := range leadingParticles {
		if strings.HasPrefix(s, p) {
			s = strings.TrimSpace(s[len(p):])
			break
		}
	}
	return s
}

// DuplicateMatch is the verdict on a candidate task. TaskID names the stored
// task the candidate collided with. Backfill means that task has no due date
// and the caller should fill the candidate's date in instead of inserting.
type DuplicateMatch struct {
	Duplicate bool
	TaskID    int64
	Backfill  bool
}

// FindDuplicate reports whether a candidate title and due date duplicate any
// existing task. Titles match when either normalized form contains the other,
// or when their first words are equal. A title match alone is not enough; the
// date rules decide:
//
//	both dates absent            duplicate
//	both dates on the same day   duplicate
//	stored date absent only      duplicate, backfill the stored task
//	anything else                not a duplicate
func FindDuplicate(existing []model.Task, title string, due *time.Time) DuplicateMatch {
	norm := NormalizeTitle(title)
	if norm == "" {
		return DuplicateMatch{}
	}

	for _, t := range existing {
		if !titlesMatch(norm, NormalizeTitle(t.Title)) {
			continue
		}

		switch {
		case due == nil && t.DueDate == nil:
			return DuplicateMatch{Duplicate: true, TaskID: t.ID}
		case due != nil && t.DueDate != nil && t.DueOn(*due):
			return DuplicateMatch{Duplicate: true, TaskID: t.ID}
		case due != nil && t.DueDate == nil:
			return DuplicateMatch{Duplicate: true, TaskID: t.ID, Backfill: true}
		}
	}
	return DuplicateMatch{}
}

func titlesMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	aw := strings.Fields(a)
	bw := strings.Fields(b)
	return len(aw) > 0 && len(bw) > 0 && aw[0] == bw[0]
}
