package core

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
	xrunes "golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

// CommandRegistry keeps commands in registration order; an empty query lists
// them that way so section commands follow the page.
type CommandRegistry struct {
	commands map[string]Command
	order    []string
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

// Register adds c, replacing a command with the same ID in place.
func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, ok := r.commands[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.commands[c.ID] = c
}

// match ranks how well a command fits a query; lower is better.
type match int

const (
	matchNone match = iota
	matchPrefix
	matchWord
	matchAnywhere
	matchTypo
)

func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := foldText(strings.TrimSpace(query))
	type ranked struct {
		CommandResult
		rank match
		pos  int
	}
	found := make([]ranked, 0, len(r.order))
	for pos, id := range r.order {
		c := r.commands[id]
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		rank := commandMatch(c, q)
		if rank == matchNone {
			continue
		}
		res := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description}
		if c.Disabled != nil {
			res.Disabled, res.Reason = c.Disabled(m)
		}
		found = append(found, ranked{CommandResult: res, rank: rank, pos: pos})
	}
	slices.SortStableFunc(found, func(a, b ranked) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(a.rank, b.rank); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})
	out := make([]CommandResult, len(found))
	for i, f := range found {
		out[i] = f.CommandResult
	}
	return out
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Neznámý příkaz: " + id)
	}
	if c.Disabled != nil {
		if disabled, reason := c.Disabled(m); disabled {
			if reason == "" {
				reason = "příkaz není dostupný"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

// commandMatch compares a folded query against the command. Queries of four
// or more letters also accept a name word within two edits.
func commandMatch(c Command, q string) match {
	if q == "" {
		return matchPrefix
	}
	name := foldText(c.Name)
	if strings.HasPrefix(name, q) {
		return matchPrefix
	}
	words := strings.Fields(name)
	for _, w := range words {
		if strings.HasPrefix(w, q) {
			return matchWord
		}
	}
	if strings.Contains(name+" "+foldText(c.Description)+" "+strings.ToLower(c.ID), q) {
		return matchAnywhere
	}
	if len([]rune(q)) < 4 {
		return matchNone
	}
	for _, w := range words {
		if levenshtein.ComputeDistance(w, q) <= 2 {
			return matchTypo
		}
	}
	return matchNone
}

var foldDiacritics = transform.Chain(norm.NFD, xrunes.Remove(xrunes.In(unicode.Mn)), norm.NFC)

// foldText lowercases s and strips diacritics, so "prejit" finds "Přejít".
func foldText(s string) string {
	out, _, err := transform.String(foldDiacritics, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
