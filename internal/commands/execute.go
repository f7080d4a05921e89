package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(FieldArgs) (Result, error)
	Update func(FieldArgs) (Result, error)
	Delete func() (Result, error)
	Select func(SelectArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(fieldsOf(cmd))
	case TypeUpdate:
		if handlers.Update == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "update handler not configured"}
		}
		return handlers.Update(fieldsOf(cmd))
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete()
	case TypeSelect:
		if handlers.Select == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "select handler not configured"}
		}
		return handlers.Select(*cmd.Select)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func fieldsOf(cmd Command) FieldArgs {
	if cmd.Fields == nil {
		return FieldArgs{}
	}
	return *cmd.Fields
}
