package session

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/tcard/rclist/persistent"
)

type step struct {
	cmd      string
	expected string
	err      error
}

func run(t *testing.T, s *Session, steps []step) {
	t.Helper()
	for _, st := range steps {
		got, err := s.Exec(st.cmd)
		if st.err != nil {
			if !errors.Is(err, st.err) {
				t.Errorf("%q: got error %v, want %v", st.cmd, err, st.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", st.cmd, err)
			continue
		}
		if got != st.expected {
			t.Errorf("%q: got %q, want %q", st.cmd, got, st.expected)
		}
	}
}

func TestSharing(t *testing.T) {
	before := persistent.LiveNodes()
	s := New()
	run(t, s, []step{
		{"new e", "()", nil},
		{"prepend a e 1", "(1)", nil},
		{"prepend a a 2", "(2 1)", nil},
		{"prepend a a 3", "(3 2 1)", nil},
		{"head a", "3", nil},
		{"tail b a", "(2 1)", nil},
		{"release a", "", nil},
		{"show b", "(2 1)", nil},
		{"head b", "2", nil},
		{"len b", "2", nil},
		{"tail c b", "(1)", nil},
		{"tail c c", "()", nil},
		{"tail c c", "()", nil},
		{"head c", "none", nil},
	})
	if got := persistent.LiveNodes() - before; got != 2 {
		t.Errorf("live nodes: got %d, want 2", got)
	}
	s.Close()
	if got := persistent.LiveNodes() - before; got != 0 {
		t.Errorf("live nodes after Close: got %d, want 0", got)
	}
}

func TestListAndShow(t *testing.T) {
	s := New()
	defer s.Close()
	run(t, s, []step{
		{"list x a b c d", "(a b c d)", nil},
		{"show x 2", "(a b ... +2)", nil},
		{"show x 4", "(a b c d)", nil},
		{"show x 9", "(a b c d)", nil},
		{"clone y x", "(a b c d)", nil},
		{"release x", "", nil},
		{"show y", "(a b c d)", nil},
		{"ls", "y = (a b c d)", nil},
		{"", "", nil},
	})
}

func TestErrors(t *testing.T) {
	s := New()
	defer s.Close()
	run(t, s, []step{
		{"frobnicate", "", ErrUnknownCommand},
		{"head nope", "", ErrUnknownList},
		{"tail a nope", "", ErrUnknownList},
		{"release nope", "", ErrUnknownList},
		{"new", "", ErrUsage},
		{"prepend a", "", ErrUsage},
		{"list x 1", "(1)", nil},
		{"show x nope", "", ErrUsage},
		{"show x -1", "", ErrUsage},
	})
}

func TestHelp(t *testing.T) {
	out, err := New().Exec("HELP")
	if err != nil || !strings.Contains(out, "prepend DST SRC v") {
		t.Errorf("help: got %q, %v", out, err)
	}
}

func TestNodes(t *testing.T) {
	s := New()
	defer s.Close()
	if _, err := s.Exec("list x 1 2 3"); err != nil {
		t.Fatal(err)
	}
	out, err := s.Exec("nodes")
	if err != nil {
		t.Fatal(err)
	}
	if want := strconv.FormatInt(persistent.LiveNodes(), 10); out != want {
		t.Errorf("nodes: got %q, want %q", out, want)
	}
}
