package registry

import (
	"fmt"
	"sync"

	"github.com/gambizardonkick/aetricrewardsdata/pkg/contracts"
)

// ProgramRegistry manages registered affiliate program modules. It is
// populated at startup and read-only afterwards.
type ProgramRegistry struct {
	programs map[string]contracts.ProgramModule
	mu       sync.RWMutex
}

// NewProgramRegistry creates a new program registry
func NewProgramRegistry() *ProgramRegistry {
	return &ProgramRegistry{
		programs: make(map[string]contracts.ProgramModule),
	}
}

// Register adds a program module to the registry
func (r *ProgramRegistry) Register(program contracts.ProgramModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := program.GetProgramKey()
	if _, exists := r.programs[key]; exists {
		return fmt.Errorf("program %s is already registered", key)
	}

	r.programs[key] = program
	return nil
}

// Get retrieves a program module by key
func (r *ProgramRegistry) Get(key string) (contracts.ProgramModule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	program, exists := r.programs[key]
	return program, exists
}

// GetAll returns all registered programs
func (r *ProgramRegistry) GetAll() []contracts.ProgramModule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	programs := make([]contracts.ProgramModule, 0, len(r.programs))
	for _, program := range r.programs {
		programs = append(programs, program)
	}
	return programs
}

// Count returns the number of registered programs
func (r *ProgramRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.programs)
}
