package models

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{&NotFoundError{Entity: "user", Key: "7"}, "user 7 not found"},
		{
			&NotFoundError{Entity: "status", Key: "done", Available: []string{"completed", "in progress", "new"}},
			"status done not found. Available: ['completed', 'in progress', 'new']",
		},
		{&NotFoundError{Entity: "status", Key: "x", Available: []string{}}, "status x not found. Available: []"},
		{&IntegrityError{Op: "insert user", Err: errors.New("UNIQUE constraint failed: users.email")}, "insert user: UNIQUE constraint failed: users.email"},
		{&PreconditionError{Path: "db.sqlite", Hint: "run the seeder"}, "database not found: db.sqlite\nrun the seeder"},
		{&PreconditionError{Path: "db.sqlite"}, "database not found: db.sqlite"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.expectedMessage)
		}
	}
}

func TestErrors_MatchSentinels(t *testing.T) {
	driverErr := errors.New("constraint failed")
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", &NotFoundError{Entity: "task", Key: "1"}, ErrNotFound},
		{"integrity", &IntegrityError{Op: "insert", Err: driverErr}, ErrIntegrity},
		{"precondition", &PreconditionError{Path: "x"}, ErrPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
			for _, other := range []error{ErrNotFound, ErrIntegrity, ErrPrecondition} {
				if other != tt.sentinel && errors.Is(wrapped, other) {
					t.Errorf("%v unexpectedly matches %v", wrapped, other)
				}
			}
		})
	}

	if !errors.Is(&IntegrityError{Op: "insert", Err: driverErr}, driverErr) {
		t.Error("IntegrityError should unwrap to the driver error")
	}
}

// ============================================================================
// Description Tests
// ============================================================================

func TestDescription_ColumnRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		desc Description
		col  sql.NullString
	}{
		{"absent", NoDescription(), sql.NullString{}},
		{"empty", EmptyDescription(), sql.NullString{String: "", Valid: true}},
		{"populated", DescriptionOf("write it down"), sql.NullString{String: "write it down", Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.NullString(); got != tt.col {
				t.Errorf("NullString() = %+v, want %+v", got, tt.col)
			}
			if got := DescriptionFromNull(tt.col); got != tt.desc {
				t.Errorf("DescriptionFromNull() = %+v, want %+v", got, tt.desc)
			}
			if !tt.desc.Valid() {
				t.Errorf("%+v should be valid", tt.desc)
			}
		})
	}
}

func TestDescription_Invalid(t *testing.T) {
	invalid := []Description{
		{State: DescriptionAbsent, Text: "stray"},
		{State: DescriptionEmpty, Text: "stray"},
		{State: DescriptionPopulated},
		{State: DescriptionState(9)},
	}
	for _, d := range invalid {
		if d.Valid() {
			t.Errorf("%+v should be invalid", d)
		}
	}
}

func TestDescription_JSON(t *testing.T) {
	tests := []struct {
		desc Description
		want string
	}{
		{NoDescription(), "null"},
		{EmptyDescription(), `""`},
		{DescriptionOf("notes"), `"notes"`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.desc)
		if err != nil {
			t.Fatalf("Marshal(%+v) failed: %v", tt.desc, err)
		}
		if string(data) != tt.want {
			t.Errorf("Marshal(%+v) = %s, want %s", tt.desc, data, tt.want)
		}

	}
}

func TestDescriptionState_String(t *testing.T) {
	if DescriptionAbsent.String() != "absent" || DescriptionEmpty.String() != "empty" || DescriptionPopulated.String() != "populated" {
		t.Error("unexpected state names")
	}
	if DescriptionState(7).String() != "DescriptionState(7)" {
		t.Errorf("unknown state = %s", DescriptionState(7).String())
	}
}
