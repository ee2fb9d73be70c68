package usecase

import "github.com/jhoicas/bravo-menu-api/internal/application/dto"

// TransitionState estado de una escritura en dos fases.
type TransitionState string

const (
	StatePending    TransitionState = "pending"
	StateCommitted  TransitionState = "committed"
	StateRolledBack TransitionState = "rolled_back"
)

// Transition cambio propuesto sobre un valor. Nace pendiente y termina confirmado o revertido;
// el llamador ve siempre el valor previo, el propuesto y el error si lo hubo.
type Transition[T any] struct {
	State    TransitionState
	Previous T
	Proposed T
	Err      error
}

// Begin abre una transición pendiente.
func Begin[T any](previous, proposed T) *Transition[T] {
	return &Transition[T]{State: StatePending, Previous: previous, Proposed: proposed}
}

// Apply ejecuta la escritura y cierra la transición según su resultado.
func (t *Transition[T]) Apply(write func() error) *Transition[T] {
	if t.State != StatePending {
		return t
	}
	if err := write(); err != nil {
		t.State = StateRolledBack
		t.Err = err
		return t
	}
	t.State = StateCommitted
	return t
}

// Current valor vigente: el propuesto solo si se confirmó.
func (t *Transition[T]) Current() T {
	if t.State == StateCommitted {
		return t.Proposed
	}
	return t.Previous
}

// Committed indica si la escritura se confirmó.
func (t *Transition[T]) Committed() bool {
	return t.State == StateCommitted
}

func toTransitionResponse[T any](t *Transition[T]) *dto.TransitionResponse {
	out := &dto.TransitionResponse{
		State:    string(t.State),
		Previous: t.Previous,
		Proposed: t.Proposed,
		Current:  t.Current(),
	}
	if t.Err != nil {
		out.Error = t.Err.Error()
	}
	return out
}
