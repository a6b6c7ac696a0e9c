package viewstate

import "testing"

func TestLegalTransitions(t *testing.T) {
	tests := []struct {
		from State
		in   Input
		want State
	}{
		{Viewing, Edit, Editing},
		{Viewing, RequestDelete, ConfirmingDelete},
		{Editing, Cancel, Viewing},
		{Editing, SaveOK, Viewing},
		{ConfirmingDelete, Cancel, Viewing},
		{ConfirmingDelete, ConfirmDelete, Viewing},
	}
	for _, tt := range tests {
		got, err := Next(tt.from, tt.in)
		if err != nil {
			t.Errorf("Next(%s, %s) unexpected error: %v", tt.from, tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Next(%s, %s) = %s, want %s", tt.from, tt.in, got, tt.want)
		}
	}
}

func TestIllegalTransitionsKeepState(t *testing.T) {
	tests := []struct {
		from State
		in   Input
	}{
		{Viewing, Cancel},
		{Viewing, SaveOK},
		{Viewing, ConfirmDelete},
		{Editing, Edit},
		{Editing, RequestDelete}, // deleting while editing is unrepresentable
		{Editing, ConfirmDelete},
		{ConfirmingDelete, Edit},
		{ConfirmingDelete, SaveOK},
		{ConfirmingDelete, RequestDelete},
	}
	for _, tt := range tests {
		got, err := Next(tt.from, tt.in)
		if err == nil {
			t.Errorf("Next(%s, %s) should be illegal", tt.from, tt.in)
		}
		if got != tt.from {
			t.Errorf("Next(%s, %s) moved to %s on error, want unchanged", tt.from, tt.in, got)
		}
	}
}

func TestParseMode(t *testing.T) {
	if got := ParseMode("edit"); got != Editing {
		t.Errorf("ParseMode(edit) = %s, want editing", got)
	}
	for _, mode := range []string{"", "view", "delete", "confirming-delete"} {
		if got := ParseMode(mode); got != Viewing {
			t.Errorf("ParseMode(%q) = %s, want viewing", mode, got)
		}
	}
}
