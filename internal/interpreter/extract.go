package interpreter

import (
	"strings"
	"time"
	"unicode"

	"github.com/Waghib/Speech-To-Plan-reminder/pkg/datemath"
)

// DefaultTitle is substituted when extraction yields an empty title.
const DefaultTitle = "Task"

// deleteTriggers are checked before anything else: a sentence containing both
// "add" and "delete" is a deletion. The ordering is deliberate.
var deleteTriggers = []string{"delete", "remove", "cancel"}

// createPrefixes is an ordered longest-match table: every phrase is tried
// before its own prefix ("add a" before "add", "remind me to" before
// "remind me").
var createPrefixes = []string{
	"i have a",
	"i have",
	"add a",
	"add",
	"create a",
	"create",
	"schedule a",
	"schedule",
	"remind me to",
	"remind me",
}

var listTriggers = []string{
	"show", "list", "get", "view", "display",
	"my tasks", "my todos", "all tasks", "all todos",
}

// titleKeywords anchor the window heuristic for complex sentences.
var titleKeywords = []string{"meeting", "appointment", "call", "task", "event", "reminder", "office"}

// targetFillers and targetSuffixes are trimmed off a deletion target name.
var targetFillers = []string{"the ", "my ", "a ", "an "}
var targetSuffixes = []string{" from my list", " from the list", " tasks", " task", " todos", " todo"}

// Extractor is the rule-based intent and slot extractor. It is a pure
// function of its inputs and safe for concurrent use.
type Extractor struct {
	dates *datemath.Parser
	now   func() time.Time
}

// NewExtractor creates an Extractor. now is the clock used to anchor relative
// dates; pass time.Now in production.
func NewExtractor(dates *datemath.Parser, now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{dates: dates, now: now}
}

// Extract classifies text into an Action. Rules run in a fixed order: delete,
// create, list. ErrNoMatch routes the caller to the generative-model path.
func (e *Extractor) Extract(text string) (Action, error) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	if lower == "" {
		return Action{}, ErrNoMatch
	}

	for _, verb := range deleteTriggers {
		if strings.Contains(lower, verb) {
			if name := deleteTarget(lower, verb); name != "" {
				return Action{Kind: KindDeleteByName, Name: name}, nil
			}
			return Action{}, ErrNoMatch
		}
	}

	if containsAny(lower, createPrefixes) {
		return e.extractCreate(trimmed), nil
	}

	if containsAny(lower, listTriggers) {
		return Action{Kind: KindList}, nil
	}

	return Action{}, ErrNoMatch
}

// extractCreate pulls a title and an optional due date out of a creation
// sentence.
func (e *Extractor) extractCreate(text string) Action {
	act := Action{Kind: KindCreate}

	// The date phrase may appear anywhere, not only at the end.
	text, phrase := removeDatePhrase(text)
	if phrase != "" {
		if due, err := e.dates.Parse(phrase, e.now()); err == nil {
			act.DueDate = &due
		}
	}

	lower := strings.ToLower(text)
	title, ok := stripLeadingPrefix(text, lower)
	if !ok {
		// Complex sentence with no leading trigger phrase: best-effort.
		title = keywordWindowTitle(text, lower)
		act.LowConfidence = true
	}

	title = capitalize(collapseSpaces(title))
	if title == "" {
		title = DefaultTitle
		act.LowConfidence = true
	}
	act.Title = title
	return act
}

// deleteTarget strips the first occurrence of the trigger verb and reduces
// the remainder to a search name.
func deleteTarget(lower, verb string) string {
	idx := strings.Index(lower, verb)
	rest := strings.TrimSpace(lower[:idx] + lower[idx+len(verb):])

	for _, suffix := range targetSuffixes {
		rest = strings.TrimSuffix(rest, suffix)
	}
	for _, filler := range targetFillers {
		rest = strings.TrimPrefix(rest, filler)
	}
	return strings.TrimSpace(rest)
}

// removeDatePhrase removes the first recognized date-indicator phrase and
// returns the remaining text plus the phrase found.
func removeDatePhrase(text string) (string, string) {
	lower := strings.ToLower(text)
	for _, ind := range datemath.Indicators {
		if idx := strings.Index(lower, ind.Phrase); idx >= 0 {
			return strings.TrimSpace(text[:idx] + text[idx+len(ind.Phrase):]), ind.Phrase
		}
	}
	return text, ""
}

// stripLeadingPrefix removes the longest matching leading trigger phrase.
func stripLeadingPrefix(text, lower string) (string, bool) {
	for _, prefix := range createPrefixes {
		if !strings.HasPrefix(lower, prefix) {
			continue
		}
		if len(lower) > len(prefix) && lower[len(prefix)] != ' ' {
			continue // word boundary: "add a" must not match "adda..."
		}
		return strings.TrimSpace(text[len(prefix):]), true
	}
	return "", false
}

// keywordWindowTitle extracts a best-effort title from a sentence whose
// trigger phrase is not leading: a fixed-width word window around the first
// domain keyword, or the middle third of the sentence as a last resort.
func keywordWindowTitle(text, lower string) string {
	words := strings.Fields(text)
	if len(words) <= 3 {
		return text
	}

	lowerWords := strings.Fields(lower)
	for _, kw := range titleKeywords {
		for i, w := range lowerWords {
			if !strings.Contains(w, kw) {
				continue
			}
			switch kw {
			case "meeting":
				if strings.Contains(lower, "office") {
					return "Office meeting"
				}
				return "Meeting"
			case "office":
				return "Go to office"
			}
			start := i - 2
			if start < 0 {
				start = 0
			}
			end := i + 3
			if end > len(words) {
				end = len(words)
			}
			return strings.Join(words[start:end], " ")
		}
	}

	// No keyword: take the middle third.
	start := len(words) / 3
	end := start + len(words)/3
	if end <= start {
		end = start + 1
	}
	return strings.Join(words[start:end], " ")
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
