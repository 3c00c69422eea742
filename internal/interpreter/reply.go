package interpreter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Function names the model is allowed to call. Anything else is rejected.
const (
	FnGetAllTodos    = "getAllTodos"
	FnCreateTodo     = "createTodo"
	FnSearchTodo     = "searchTodo"
	FnDeleteTodoByID = "deleteTodoById"
)

// modelReply is the wire shape of a structured model reply.
type modelReply struct {
	Type     string          `json:"type"`
	Output   string          `json:"output"`
	Function string          `json:"function"`
	Input    json.RawMessage `json:"input"`
}

// createInput is the object form of a createTodo input. The model sometimes
// sends a bare string instead; both are accepted.
type createInput struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

type searchInput struct {
	Title string `json:"title"`
}

// ParseModelReply parses a model reply strictly. Only replies that survive
// this parse are ever executed; everything else goes through CleanReply,
// which produces display text and never an Action.
func ParseModelReply(raw string) (Reply, error) {
	var mr modelReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &mr); err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	switch mr.Type {
	case string(ReplyOutput):
		return Reply{Type: ReplyOutput, Output: mr.Output}, nil
	case string(ReplyAction):
		act, err := actionFromFunction(mr.Function, mr.Input)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Type: ReplyAction, Action: &act, Function: mr.Function}, nil
	default:
		return Reply{}, ErrMalformedReply
	}
}

// actionFromFunction maps a protocol function call onto an Action, tolerating
// the input shapes the model actually produces.
func actionFromFunction(fn string, input json.RawMessage) (Action, error) {
	switch fn {
	case FnGetAllTodos:
		return Action{Kind: KindList}, nil

	case FnCreateTodo:
		var obj createInput
		if err := json.Unmarshal(input, &obj); err == nil && obj.Title != "" {
			return Action{Kind: KindCreate, Title: obj.Title, DueDateText: obj.DueDate}, nil
		}
		var title string
		if err := json.Unmarshal(input, &title); err == nil && title != "" {
			return Action{Kind: KindCreate, Title: title}, nil
		}
		return Action{}, fmt.Errorf("%w: createTodo input", ErrMalformedReply)

	case FnSearchTodo:
		var obj searchInput
		if err := json.Unmarshal(input, &obj); err == nil && obj.Title != "" {
			return Action{Kind: KindSearch, Query: obj.Title}, nil
		}
		var q string
		if err := json.Unmarshal(input, &q); err == nil && q != "" {
			return Action{Kind: KindSearch, Query: q}, nil
		}
		return Action{}, fmt.Errorf("%w: searchTodo input", ErrMalformedReply)

	case FnDeleteTodoByID:
		ids, err := parseIDInput(input)
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: KindDeleteByID, IDs: ids}, nil

	default:
		return Action{}, &UnknownFunctionError{Function: fn}
	}
}

// parseIDInput accepts an id list, a single id, or a numeric string.
func parseIDInput(input json.RawMessage) ([]int64, error) {
	var ids []int64
	if err := json.Unmarshal(input, &ids); err == nil && len(ids) > 0 {
		return ids, nil
	}
	var id int64
	if err := json.Unmarshal(input, &id); err == nil {
		return []int64{id}, nil
	}
	var s string
	if err := json.Unmarshal(input, &s); err == nil {
		if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return []int64{id}, nil
		}
	}
	return nil, fmt.Errorf("%w: deleteTodoById input", ErrMalformedReply)
}

var jsonMarkers = []string{"{", "}", "```", "`", `"type":`, `"function":`}

var (
	fencedRe    = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	backtickRe  = regexp.MustCompile("(?s)`(\\{.*?\\})`")
	quotedRe    = regexp.MustCompile(`(?s)"(\{.*?\})"`)
	actionRe    = regexp.MustCompile(`(?s)"type"\s*:\s*"action".*?"function"\s*:\s*"(\w+)"`)
	titleRe     = regexp.MustCompile(`"title"\s*:\s*"(.*?)"`)
	outputRe    = regexp.MustCompile(`(?s)"output"\s*:\s*"(.*?)"`)
	jsonNoiseRe = regexp.MustCompile("[{}\"`]|```(?:json)?|\\btype\\s*:|\\boutput\\s*:|\\bfunction\\s*:|\\binput\\s*:")
)

// CleanReply turns an arbitrary model reply into displayable text. Plain
// prose passes through untouched; replies carrying JSON artifacts are reduced
// to either the embedded output text or an acknowledgement of the embedded
// action. The result is display-only and is never executed.
func CleanReply(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return text
	}

	if !containsAny(text, jsonMarkers) {
		return text
	}

	if out, ok := renderParsed(text); ok {
		return out
	}

	// JSON wrapped in markdown fences, backticks, or quotes.
	for _, re := range []*regexp.Regexp{fencedRe, backtickRe, quotedRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			if out, ok := renderParsed(m[1]); ok {
				return out
			}
		}
	}

	// Outermost brace pair.
	if open := strings.Index(text, "{"); open >= 0 {
		if close := strings.LastIndex(text, "}"); close > open {
			if out, ok := renderParsed(text[open : close+1]); ok {
				return out
			}
		}
	}

	// Broken JSON that still names an action.
	if m := actionRe.FindStringSubmatch(text); m != nil {
		title := ""
		if tm := titleRe.FindStringSubmatch(text); tm != nil {
			title = tm[1]
		}
		return acknowledge(m[1], title)
	}

	// Broken JSON that still carries output text.
	if m := outputRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	// Last resort: strip structural noise.
	if cleaned := strings.TrimSpace(jsonNoiseRe.ReplaceAllString(text, " ")); cleaned != "" {
		return collapseSpaces(cleaned)
	}
	return text
}

// renderParsed renders a strictly-parseable reply as display text.
func renderParsed(candidate string) (string, bool) {
	var mr modelReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), &mr); err != nil {
		return "", false
	}
	switch mr.Type {
	case string(ReplyOutput):
		return mr.Output, true
	case string(ReplyAction):
		title := ""
		var obj createInput
		if json.Unmarshal(mr.Input, &obj) == nil && obj.Title != "" {
			title = obj.Title
		} else {
			var s string
			if json.Unmarshal(mr.Input, &s) == nil {
				title = s
			}
		}
		return acknowledge(mr.Function, title), true
	}
	return "", false
}

// acknowledge produces the user-facing confirmation for an action that could
// not be executed directly.
func acknowledge(fn, title string) string {
	switch fn {
	case FnGetAllTodos:
		return "Let me fetch your tasks for you."
	case FnCreateTodo:
		if title != "" {
			return fmt.Sprintf("I'll add '%s' to your tasks.", title)
		}
		return "I'll add that to your tasks."
	case FnSearchTodo:
		if title != "" {
			return fmt.Sprintf("Searching for tasks with '%s'.", title)
		}
		return "Searching for your tasks."
	case FnDeleteTodoByID:
		return "I'll delete that task for you."
	default:
		return fmt.Sprintf("I'll help you with that %s action.", fn)
	}
}
