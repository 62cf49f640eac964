package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/weekplan/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
	TypeDay    Type = "day"
	TypeShow   Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// TargetSelected refers to the task under the cursor.
const TargetSelected = "selected"

type AddArgs struct {
	Task model.NewTask
}

type TargetArgs struct {
	Target string
}

type DayArgs struct {
	Day model.Day
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Toggle *TargetArgs
	Delete *TargetArgs
	Day    *DayArgs
	Show   *ShowArgs
}

var showSubjects = []string{"dashboard", "timetable", "analytics"}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeToggle:
		target, err := parseTarget("toggle", args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeToggle, Raw: input, Toggle: target}, nil
	case TypeDelete:
		target, err := parseTarget("delete", args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeDelete, Raw: input, Delete: target}, nil
	case TypeDay:
		return parseDay(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd reads: <day> <HH:MM>-<HH:MM> <category> [priority] <title...> [-- <description...>]
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 4 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "usage: add <day> <start>-<end> <category> [priority] <title> [-- <description>]"}
	}
	day, err := model.ParseDay(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	start, end, ok := strings.Cut(args[1], "-")
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("time range must be start-end: %s", args[1])}
	}
	category := model.Category(strings.ToLower(args[2]))
	rest := args[3:]
	description := ""
	for i, word := range rest {
		if word == "--" {
			description = strings.Join(rest[i+1:], " ")
			rest = rest[:i]
			break
		}
	}
	if len(rest) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	priority := model.PriorityMedium
	if p := model.Priority(strings.ToLower(rest[0])); p.IsValid() && len(rest) > 1 {
		priority = p
		rest = rest[1:]
	}
	title := strings.TrimSpace(strings.Join(rest, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}

	task := model.NewTask{
		Title:       title,
		Description: description,
		Day:         day,
		Category:    category,
		StartTime:   start,
		EndTime:     end,
		Priority:    priority,
	}
	if err := task.Validate(); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Task: task}}, nil
}

func parseTarget(name string, args []string) (*TargetArgs, error) {
	if len(args) != 1 {
		return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id or %q", name, TargetSelected)}
	}
	target := args[0]
	if strings.EqualFold(target, TargetSelected) {
		target = TargetSelected
	}
	return &TargetArgs{Target: target}, nil
}

func parseDay(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "day requires a weekday name"}
	}
	day, err := model.ParseDay(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeDay, Raw: raw, Day: &DayArgs{Day: day}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	for _, s := range showSubjects {
		if s == subject {
			return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject}}, nil
		}
	}
	return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("show supports: %s", strings.Join(showSubjects, ", "))}
}
