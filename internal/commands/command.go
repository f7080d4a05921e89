package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeUpdate Type = "update"
	TypeDelete Type = "delete"
	TypeSelect Type = "select"
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

// FieldArgs carries form overrides typed on the palette. Empty fields fall
// back to whatever the form currently holds.
type FieldArgs struct {
	Name     string
	Priority *int
	Date     string
}

type SelectArgs struct {
	// Index is zero-based; the palette takes 1-based positions.
	Index int
}

type Command struct {
	Type   Type
	Raw    string
	Fields *FieldArgs
	Select *SelectArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
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
	case TypeAdd, TypeUpdate:
		fields, err := parseFields(args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: Type(head), Raw: input, Fields: fields}, nil
	case TypeDelete, "rm":
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete takes no arguments"}
		}
		return Command{Type: TypeDelete, Raw: input}, nil
	case TypeSelect:
		return parseSelect(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseFields reads "<name words> p:<priority> d:<date words>". Date words run
// to the end of the input so natural dates like "d:next friday" work.
func parseFields(args []string) (*FieldArgs, error) {
	out := &FieldArgs{}
	name := make([]string, 0, len(args))
	date := make([]string, 0, 2)
	inDate := false
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "p:"):
			inDate = false
			v, err := strconv.Atoi(strings.TrimSpace(arg[2:]))
			if err != nil {
				return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("priority must be a number: %q", arg[2:])}
			}
			out.Priority = &v
		case strings.HasPrefix(lower, "d:"):
			inDate = true
			if rest := strings.TrimSpace(arg[2:]); rest != "" {
				date = append(date, rest)
			}
		case inDate:
			date = append(date, arg)
		default:
			name = append(name, arg)
		}
	}
	out.Name = strings.TrimSpace(strings.Join(name, " "))
	out.Date = strings.TrimSpace(strings.Join(date, " "))
	return out, nil
}

func parseSelect(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "select requires a row number"}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid row number: %q", args[0])}
	}
	return Command{Type: TypeSelect, Raw: raw, Select: &SelectArgs{Index: n - 1}}, nil
}
