// Package state holds the runtime state block: the named numeric state
// variables a property evaluation reads and writes, with a back-reference
// to the parameter block that defines the model.
package state

import (
	"github.com/vk/flashkit/internal/model"
)

// Index addresses one entry of a phase/component-indexed variable.
type Index struct {
	Phase     string
	Component string
}

// Var is a named, phase/component-indexed state variable. Selectors hand
// out the *Var itself, so two lookups of the same quantity compare equal by
// identity.
type Var struct {
	name   string
	values map[Index]float64
}

func newVar(name string) *Var {
	return &Var{name: name, values: make(map[Index]float64)}
}

// Name returns the variable's canonical name.
func (v *Var) Name() string {
	return v.name
}

// Value reads one entry; unset entries read as zero.
func (v *Var) Value(phase, comp string) float64 {
	return v.values[Index{Phase: phase, Component: comp}]
}

// Set writes one entry.
func (v *Var) Set(phase, comp string, value float64) {
	v.values[Index{Phase: phase, Component: comp}] = value
}

// Block is the runtime state of one property evaluation point. It is owned
// by the caller; this package only constructs the variable handles and
// never retains external resources.
type Block struct {
	params *model.ParameterBlock

	// Pressure and Temperature are the scalar state of the block, in Pa
	// and K.
	Pressure    float64
	Temperature float64

	// MoleFrac is the overall mole fraction per component.
	MoleFrac map[string]float64

	concMol     *Var
	act         *Var
	molality    *Var
	moleFrac    *Var
	massFrac    *Var
	partialPres *Var

	logConcMol     *Var
	logAct         *Var
	logMolality    *Var
	logMoleFrac    *Var
	logMassFrac    *Var
	logPartialPres *Var
}

// NewBlock creates a state block over a built parameter block.
func NewBlock(params *model.ParameterBlock) *Block {
	return &Block{
		params:   params,
		MoleFrac: make(map[string]float64),

		concMol:     newVar("conc_mol_phase_comp"),
		act:         newVar("act_phase_comp"),
		molality:    newVar("molality_phase_comp"),
		moleFrac:    newVar("mole_frac_phase_comp"),
		massFrac:    newVar("mass_frac_phase_comp"),
		partialPres: newVar("pressure_phase_comp"),

		logConcMol:     newVar("log_conc_mol_phase_comp"),
		logAct:         newVar("log_act_phase_comp"),
		logMolality:    newVar("log_molality_phase_comp"),
		logMoleFrac:    newVar("log_mole_frac_phase_comp"),
		logMassFrac:    newVar("log_mass_frac_phase_comp"),
		logPartialPres: newVar("log_pressure_phase_comp"),
	}
}

// Params returns the defining parameter block.
func (b *Block) Params() *model.ParameterBlock {
	return b.params
}

func (b *Block) ConcMolPhaseComp() *Var  { return b.concMol }
func (b *Block) ActPhaseComp() *Var      { return b.act }
func (b *Block) MolalityPhaseComp() *Var { return b.molality }
func (b *Block) MoleFracPhaseComp() *Var { return b.moleFrac }
func (b *Block) MassFracPhaseComp() *Var { return b.massFrac }
func (b *Block) PressurePhaseComp() *Var { return b.partialPres }

func (b *Block) LogConcMolPhaseComp() *Var  { return b.logConcMol }
func (b *Block) LogActPhaseComp() *Var      { return b.logAct }
func (b *Block) LogMolalityPhaseComp() *Var { return b.logMolality }
func (b *Block) LogMoleFracPhaseComp() *Var { return b.logMoleFrac }
func (b *Block) LogMassFracPhaseComp() *Var { return b.logMassFrac }
func (b *Block) LogPressurePhaseComp() *Var { return b.logPartialPres }
