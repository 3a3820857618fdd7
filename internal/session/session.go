// Package session keeps a set of named lists and manipulates them through
// one-line text commands, one command per call to Exec.
package session

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strconv"
	"strings"

	"github.com/tcard/rclist/persistent"
	"github.com/tcard/rclist/seq"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownList    = errors.New("unknown list")
	ErrUsage          = errors.New("usage")
)

const HelpText = `commands:
  new N               bind N to the empty list
  list N v...         bind N to the list v...
  prepend DST SRC v   bind DST to v in front of SRC
  tail DST SRC        bind DST to the tail of SRC
  clone DST SRC       bind DST to another handle on SRC
  head N              print the first element of N
  show N [max]        print N, at most max elements
  len N               print the length of N
  release N           release N and forget it
  ls                  print every bound name
  nodes               print the number of live nodes
  help                print this help
`

type Session struct {
	lists map[string]*persistent.List[string]
}

func New() *Session {
	return &Session{lists: map[string]*persistent.List[string]{}}
}

// Exec runs one command and returns what it prints. Blank lines print nothing.
func (s *Session) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "new":
		if len(args) != 1 {
			return "", usage("new N")
		}
		s.bind(args[0], persistent.New[string]())
		return "()", nil

	case "list":
		if len(args) < 1 {
			return "", usage("list N v...")
		}
		l := persistent.NewList(args[1:]...)
		s.bind(args[0], l)
		return l.String(), nil

	case "prepend":
		if len(args) != 3 {
			return "", usage("prepend DST SRC v")
		}
		src, err := s.get(args[1])
		if err != nil {
			return "", err
		}
		l := src.Prepend(args[2])
		s.bind(args[0], l)
		return l.String(), nil

	case "tail", "clone":
		if len(args) != 2 {
			return "", usage(cmd + " DST SRC")
		}
		src, err := s.get(args[1])
		if err != nil {
			return "", err
		}
		var l *persistent.List[string]
		if cmd == "tail" {
			l = src.Tail()
		} else {
			l = src.Clone()
		}
		s.bind(args[0], l)
		return l.String(), nil

	case "head":
		if len(args) != 1 {
			return "", usage("head N")
		}
		l, err := s.get(args[0])
		if err != nil {
			return "", err
		}
		x, ok := l.Head()
		if !ok {
			return "none", nil
		}
		return x, nil

	case "show":
		if len(args) != 1 && len(args) != 2 {
			return "", usage("show N [max]")
		}
		l, err := s.get(args[0])
		if err != nil {
			return "", err
		}
		if len(args) == 1 {
			return l.String(), nil
		}
		limit, err := strconv.Atoi(args[1])
		if err != nil || limit < 0 {
			return "", usage("show N [max], max >= 0")
		}
		out := seq.Format[string](taken{seq.Take[string](limit, l)}, "(", "")
		if n := l.Len(); n > limit {
			out += fmt.Sprintf(" ... +%d", n-limit)
		}
		return out + ")", nil

	case "len":
		if len(args) != 1 {
			return "", usage("len N")
		}
		l, err := s.get(args[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(seq.Count[string](l)), nil

	case "release":
		if len(args) != 1 {
			return "", usage("release N")
		}
		l, err := s.get(args[0])
		if err != nil {
			return "", err
		}
		l.Release()
		delete(s.lists, args[0])
		return "", nil

	case "ls":
		return strings.Join(s.Bindings(), "\n"), nil

	case "nodes":
		return strconv.FormatInt(persistent.LiveNodes(), 10), nil

	case "help":
		return HelpText, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

// Bindings returns "name = list" for every bound name, sorted by name.
func (s *Session) Bindings() []string {
	names := make([]string, 0, len(s.lists))
	for name, l := range s.lists {
		names = append(names, name+" = "+l.String())
	}
	sort.Strings(names)
	return names
}

// Close releases every list in the session.
func (s *Session) Close() {
	for name, l := range s.lists {
		l.Release()
		delete(s.lists, name)
	}
}

func (s *Session) get(name string) (*persistent.List[string], error) {
	l, ok := s.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	return l, nil
}

// bind must run after the new list has been derived from the old one, so a
// name can be rebound to a list built from itself.
func (s *Session) bind(name string, l *persistent.List[string]) {
	if old, ok := s.lists[name]; ok {
		old.Release()
	}
	s.lists[name] = l
}

func usage(form string) error {
	return fmt.Errorf("%w: %s", ErrUsage, form)
}

type taken struct {
	all iter.Seq[string]
}

func (t taken) All() iter.Seq[string] { return t.all }
