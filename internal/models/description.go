package models

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// DescriptionState is the tag of a Description.
// Absent and Empty are distinct: absent is stored as NULL, empty as an empty string.
type DescriptionState int

const (
	DescriptionAbsent DescriptionState = iota
	DescriptionEmpty
	DescriptionPopulated
)

func (s DescriptionState) String() string {
	switch s {
	case DescriptionAbsent:
		return "absent"
	case DescriptionEmpty:
		return "empty"
	case DescriptionPopulated:
		return "populated"
	default:
		return fmt.Sprintf("DescriptionState(%d)", int(s))
	}
}

// Description is a task description in exactly one of three states.
// Text is only meaningful when State is DescriptionPopulated.
type Description struct {
	State DescriptionState
	Text  string
}

// NoDescription returns the absent description
func NoDescription() Description {
	return Description{State: DescriptionAbsent}
}

// EmptyDescription returns a present but empty description
func EmptyDescription() Description {
	return Description{State: DescriptionEmpty}
}

// DescriptionOf classifies text: "" becomes Empty, anything else Populated
func DescriptionOf(text string) Description {
	if text == "" {
		return EmptyDescription()
	}
	return Description{State: DescriptionPopulated, Text: text}
}

// NullString converts the description into its column value
func (d Description) NullString() sql.NullString {
	switch d.State {
	case DescriptionEmpty:
		return sql.NullString{String: "", Valid: true}
	case DescriptionPopulated:
		return sql.NullString{String: d.Text, Valid: true}
	default:
		return sql.NullString{}
	}
}

// DescriptionFromNull converts a column value back into a description
func DescriptionFromNull(ns sql.NullString) Description {
	if !ns.Valid {
		return NoDescription()
	}
	return DescriptionOf(ns.String)
}

// Valid reports whether the state is one of the three known tags
func (d Description) Valid() bool {
	switch d.State {
	case DescriptionAbsent, DescriptionEmpty:
		return d.Text == ""
	case DescriptionPopulated:
		return d.Text != ""
	default:
		return false
	}
}

// MarshalJSON encodes absent as null and the other states as a string
func (d Description) MarshalJSON() ([]byte, error) {
	if d.State == DescriptionAbsent {
		return []byte("null"), nil
	}
	return json.Marshal(d.Text)
}
