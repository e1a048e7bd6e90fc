package etasparams

import "errors"

// ErrInvariantViolated is returned by Validate when any of CatalogParams'
// field invariants fail. It is a fatal, setup-time error: no simulation
// work may proceed once this is returned.
var ErrInvariantViolated = errors.New("etasparams: parameter invariant violated")

// CatalogParams is the immutable parameter bundle for one simulation run.
// Field names are normative for serialization.
type CatalogParams struct {
	// A is the productivity exponent (log10 of reference productivity).
	A float64 `yaml:"a"`
	// P is the Omori decay exponent.
	P float64 `yaml:"p"`
	// C is the Omori offset (days).
	C float64 `yaml:"c"`
	// B is the Gutenberg-Richter b-value.
	B float64 `yaml:"b"`
	// Alpha is the productivity magnitude-scaling exponent.
	Alpha float64 `yaml:"alpha"`

	// MRef is the reference magnitude productivity is defined against.
	MRef float64 `yaml:"m_ref"`
	// MSup is the upper magnitude bound of the productivity reference
	// window (the "superior" magnitude).
	MSup float64 `yaml:"m_sup"`
	// MMinLo, MMinHi bound the adaptive next-generation minimum magnitude.
	MMinLo float64 `yaml:"m_min_lo"`
	MMinHi float64 `yaml:"m_min_hi"`
	// MMaxSim is the maximum magnitude ever simulated.
	MMaxSim float64 `yaml:"m_max_sim"`

	// TBegin, TEnd bound the simulated time window (days).
	TBegin float64 `yaml:"t_begin"`
	TEnd   float64 `yaml:"t_end"`
	// TEps is the dead-zone width excluded immediately after a parent's
	// own event time, to keep a parent from being its own instantaneous
	// aftershock.
	TEps float64 `yaml:"teps"`

	// GenSizeTarget is the target number of children per generation step,
	// used to adaptively choose the next generation's minimum magnitude.
	GenSizeTarget float64 `yaml:"gen_size_target"`
	// GenCountMax is the maximum number of generations to simulate,
	// counting generation 0 (generation 0 itself counts toward the limit).
	GenCountMax int `yaml:"gen_count_max"`
}

// Validate checks every field invariant. Returns ErrInvariantViolated
// wrapped with the specific violation via errors.Is compatibility
// (errors.Is(err, ErrInvariantViolated) is always true for a non-nil
// return).
func (p CatalogParams) Validate() error {
	switch {
	case !(p.MRef <= p.MMinLo):
		return wrap("m_ref must be <= m_min_lo")
	case !(p.MMinLo <= p.MMinHi):
		return wrap("m_min_lo must be <= m_min_hi")
	case !(p.MMinHi <= p.MMaxSim):
		return wrap("m_min_hi must be <= m_max_sim")
	case !(p.MMaxSim <= p.MSup):
		return wrap("m_max_sim must be <= m_sup")
	case !(p.C > 0):
		return wrap("c must be > 0")
	case !(p.B > 0):
		return wrap("b must be > 0")
	case !(p.TBegin < p.TEnd):
		return wrap("t_begin must be < t_end")
	case !(p.TEps >= 0):
		return wrap("teps must be >= 0")
	case !(p.GenSizeTarget >= 1):
		return wrap("gen_size_target must be >= 1")
	case !(p.GenCountMax >= 1):
		return wrap("gen_count_max must be >= 1")
	}
	// Note: 0 < p.P is expected (spec: "typical 0.9-1.3 but not enforced"),
	// so P itself is deliberately NOT range-checked here.
	return nil
}

func wrap(reason string) error {
	return &invariantError{reason: reason}
}

type invariantError struct{ reason string }

func (e *invariantError) Error() string { return "etasparams: " + e.reason }

func (e *invariantError) Unwrap() error { return ErrInvariantViolated }
