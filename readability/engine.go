package readability

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/c360studio/leesbaar/textstats"
)

// Registry holds the formulas an Engine can run, keyed by ID.
type Registry struct {
	mu       sync.RWMutex
	formulas map[FormulaID]Formula
	order    []FormulaID
}

// NewRegistry creates a registry with the given formulas.
func NewRegistry(formulas ...Formula) (*Registry, error) {
	r := &Registry{formulas: make(map[FormulaID]Formula)}
	for _, f := range formulas {
		if err := r.Register(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewDefaultRegistry creates a registry with the built-in Dutch formulas.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinFormulas()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Register validates f and adds it. IDs must be unique.
func (r *Registry) Register(f Formula) error {
	if err := f.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.formulas[f.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFormula, f.ID)
	}
	f.Terms = slices.Clone(f.Terms)
	r.formulas[f.ID] = f
	r.order = append(r.order, f.ID)
	return nil
}

// Get returns the formula registered under id.
func (r *Registry) Get(id FormulaID) (Formula, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formulas[id]
	return f, ok
}

// IDs returns the registered IDs in registration order.
func (r *Registry) IDs() []FormulaID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Result is one formula score.
type Result struct {
	Formula FormulaID `json:"formula" yaml:"formula"`
	Score   float64   `json:"score" yaml:"score"`
}

// Results maps formula IDs to scores.
type Results map[FormulaID]float64

// Sorted returns the results ordered by formula ID.
func (r Results) Sorted() []Result {
	out := make([]Result, 0, len(r))
	for id, score := range r {
		out = append(out, Result{Formula: id, Score: score})
	}
	slices.SortFunc(out, func(a, b Result) int {
		return cmp.Compare(a.Formula, b.Formula)
	})
	return out
}

// Engine scores statistics against the formulas of a Registry. All formulas
// read the same Statistics value; nothing is recounted per formula.
type Engine struct {
	registry *Registry
}

// NewEngine creates an engine over r. A nil registry uses the built-in
// formulas.
func NewEngine(r *Registry) *Engine {
	if r == nil {
		r = NewDefaultRegistry()
	}
	return &Engine{registry: r}
}

// Registry returns the engine's formula registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Score evaluates the requested formulas, or every registered formula when
// ids is empty. Empty statistics score EmptyScore for every formula.
func (e *Engine) Score(stats textstats.Statistics, ids ...FormulaID) (Results, error) {
	formulas, err := e.resolve(ids)
	if err != nil {
		return nil, err
	}

	results := make(Results, len(formulas))
	for _, f := range formulas {
		results[f.ID] = f.Evaluate(stats)
	}
	return results, nil
}

// Grade maps a score of formula id to school grades using the formula's
// grade bands.
func (e *Engine) Grade(id FormulaID, score float64) ([]int, error) {
	f, ok := e.registry.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormula, id)
	}
	if len(f.Grades) == 0 {
		return nil, fmt.Errorf("formula %s: %w: no grade bands", id, ErrScoreOutOfRange)
	}
	grades, err := f.Grades.Lookup(score)
	if err != nil {
		return nil, fmt.Errorf("formula %s: %w", id, err)
	}
	return grades, nil
}

// Validate checks that every id is registered.
func (e *Engine) Validate(ids ...FormulaID) error {
	_, err := e.resolve(ids)
	return err
}

func (e *Engine) resolve(ids []FormulaID) ([]Formula, error) {
	if len(ids) == 0 {
		ids = e.registry.IDs()
	}
	formulas := make([]Formula, 0, len(ids))
	for _, id := range ids {
		f, ok := e.registry.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormula, id)
		}
		formulas = append(formulas, f)
	}
	return formulas, nil
}
