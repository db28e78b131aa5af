package domain

import (
	"strings"
	"testing"
)

func TestExitCodeError_Error(t *testing.T) {
	err := &ExitCodeError{Name: "gnosis", Code: 3}
	msg := err.Error()
	if !strings.Contains(msg, "gnosis") || !strings.Contains(msg, "3") {
		t.Errorf("message should name the suite and code: %q", msg)
	}
}

func TestTestNotFoundError_ListsAllMissing(t *testing.T) {
	err := &TestNotFoundError{Missing: []string{"uniswap", "compound"}}
	msg := err.Error()
	for _, name := range []string{"uniswap", "compound"} {
		if !strings.Contains(msg, name) {
			t.Errorf("message should list %q: %q", name, msg)
		}
	}
}
