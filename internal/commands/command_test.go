package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add Buy milk p:2 d:2024-01-05", TypeAdd},
		{"update", TypeUpdate},
		{"/delete", TypeDelete},
		{"rm", TypeDelete},
		{"select 2", TypeSelect},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddFields(t *testing.T) {
	cmd, err := Parse("/add Buy oat milk p:2 d:next friday")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	f := cmd.Fields
	if f == nil || f.Name != "Buy oat milk" || f.Priority == nil || *f.Priority != 2 || f.Date != "next friday" {
		t.Fatalf("unexpected fields: %+v", f)
	}
}

func TestParseUpdateWithoutArgsHasEmptyFields(t *testing.T) {
	cmd, err := Parse("update")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Fields == nil || cmd.Fields.Name != "" || cmd.Fields.Priority != nil || cmd.Fields.Date != "" {
		t.Fatalf("expected empty overrides, got %+v", cmd.Fields)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"   ", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add milk p:high", ErrCodeInvalidArgument},
		{"select", ErrCodeInvalidArgument},
		{"select 0", ErrCodeInvalidArgument},
		{"select two", ErrCodeInvalidArgument},
		{"delete now", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestSelectIsZeroBased(t *testing.T) {
	cmd, err := Parse("select 3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Select.Index != 2 {
		t.Fatalf("expected index 2, got %d", cmd.Select.Index)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs p:1 d:tomorrow")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a FieldArgs) (Result, error) {
			called = true
			if a.Name != "write docs" || a.Date != "tomorrow" {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("delete")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
