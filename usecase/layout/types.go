package layout

import (
	"github.com/gridpad/gridpad/domain"
	"github.com/gridpad/gridpad/internal/llm"
)

// Repos holds repositories needed for layout use cases.
type Repos struct {
	Layout domain.LayoutRepository
}

// UseCase wires repositories needed for layout use cases. LLM is optional;
// Describe falls back to a deterministic summary when it is nil.
type UseCase struct {
	Repos *Repos
	LLM   llm.Client
}
