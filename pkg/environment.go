package lume

import "fmt"

// Scope is a handle into the environment arena. Handle 0 is the global
// scope and is never reclaimed.
type Scope int

const GlobalScope Scope = 0

type scopeRecord struct {
	bindings map[string]Value
	parent   Scope
	live     bool
}

// Environment is an arena of scope records forming chains from innermost
// block to global. Each record owns its bindings map; the parent link is an
// index, not ownership. Block entry allocates a record and block exit
// reclaims it, so bindings never survive re-entry.
type Environment struct {
	records  []*scopeRecord
	free     []Scope
	reporter Reporter
}

func NewEnvironment(reporter Reporter) *Environment {
	env := &Environment{reporter: reporter}
	env.records = append(env.records, &scopeRecord{
		bindings: make(map[string]Value),
		parent:   -1,
		live:     true,
	})

	return env
}

// Begin opens a child scope of parent, reusing a reclaimed record when one
// is available.
func (e *Environment) Begin(parent Scope) Scope {
	if n := len(e.free); n > 0 {
		s := e.free[n-1]
		e.free = e.free[:n-1]

		rec := e.records[s]
		rec.parent = parent
		rec.live = true
		return s
	}

	e.records = append(e.records, &scopeRecord{
		bindings: make(map[string]Value),
		parent:   parent,
		live:     true,
	})

	return Scope(len(e.records) - 1)
}

// End invalidates a scope handle and reclaims its record. The bindings map
// is cleared so a reused record starts empty.
func (e *Environment) End(s Scope) {
	if s == GlobalScope {
		return
	}

	rec := e.records[s]
	rec.live = false
	for name := range rec.bindings {
		delete(rec.bindings, name)
	}

	e.free = append(e.free, s)
}

// Define inserts or overwrites a binding in scope s only. Redeclaring in
// the same scope silently shadows the previous value.
func (e *Environment) Define(s Scope, name string, v Value) {
	e.records[s].bindings[name] = v
}

// Get resolves name by walking the chain outward from s; the innermost
// definition wins. A miss anywhere in the chain is a runtime failure.
func (e *Environment) Get(s Scope, name Token) (Value, error) {
	for cur := s; cur >= 0; cur = e.records[cur].parent {
		if v, ok := e.records[cur].bindings[name.Lexeme]; ok {
			return v, nil
		}
	}

	msg := fmt.Sprintf("Undefined Variable '%s'.", name.Lexeme)
	e.reporter.Report(name.Line, "", msg)

	return nil, &RuntimeError{Line: name.Line, Message: msg}
}

// Assign overwrites name in the nearest enclosing scope that already
// defines it. It never creates a binding.
func (e *Environment) Assign(s Scope, name Token, v Value) error {
	for cur := s; cur >= 0; cur = e.records[cur].parent {
		if _, ok := e.records[cur].bindings[name.Lexeme]; ok {
			e.records[cur].bindings[name.Lexeme] = v
			return nil
		}
	}

	msg := fmt.Sprintf("Undefined Variable '%s'.", name.Lexeme)
	e.reporter.Report(name.Line, fmt.Sprintf("at '%s'", name.Lexeme), msg)

	return &RuntimeError{Line: name.Line, Message: msg}
}
