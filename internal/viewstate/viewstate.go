// Package viewstate models the detail view's mode as an explicit state
// machine instead of ad hoc booleans, so combinations like "editing
// while a delete confirmation is pending" cannot be represented.
package viewstate

import "fmt"

// State of the record detail view.
type State int

const (
	// Viewing is the initial read-only state.
	Viewing State = iota
	// Editing makes every field mutable.
	Editing
	// ConfirmingDelete is the modal confirmation before a delete fires.
	ConfirmingDelete
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case ConfirmingDelete:
		return "confirming-delete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Input is a user action driving the state machine.
type Input int

const (
	// Edit switches the view into edit mode.
	Edit Input = iota
	// Cancel discards in-memory edits or dismisses the confirmation.
	Cancel
	// SaveOK is a successful save; a failed save keeps the state.
	SaveOK
	// RequestDelete opens the delete confirmation.
	RequestDelete
	// ConfirmDelete fires the delete call; the view is torn down after.
	ConfirmDelete
)

func (i Input) String() string {
	switch i {
	case Edit:
		return "edit"
	case Cancel:
		return "cancel"
	case SaveOK:
		return "save-ok"
	case RequestDelete:
		return "request-delete"
	case ConfirmDelete:
		return "confirm-delete"
	default:
		return fmt.Sprintf("Input(%d)", int(i))
	}
}

var transitions = map[State]map[Input]State{
	Viewing: {
		Edit:          Editing,
		RequestDelete: ConfirmingDelete,
	},
	Editing: {
		Cancel: Viewing,
		SaveOK: Viewing,
	},
	ConfirmingDelete: {
		Cancel:        Viewing,
		ConfirmDelete: Viewing,
	},
}

// Next returns the state after applying an input, or an error for an
// illegal transition (the state is unchanged in that case).
func Next(s State, in Input) (State, error) {
	if next, ok := transitions[s][in]; ok {
		return next, nil
	}
	return s, fmt.Errorf("viewstate: cannot apply %s while %s", in, s)
}

// ParseMode maps the detail page's mode query parameter onto a state.
// Unknown values fall back to Viewing; delete confirmation is never
// entered from a URL.
func ParseMode(mode string) State {
	if mode == "edit" {
		return Editing
	}
	return Viewing
}
