package trans

import "fmt"

// RegisterAll publishes every candidate to r, the submission first:
//
//	Submit       under SubmitDesc (the string the driver searches for),
//	Baseline     under BaselineDesc,
//	Experimental under ExperimentalDesc.
//
// One-shot builder step: call it once per Registrar, before evaluation.
// The first registration error aborts and is returned wrapped with the
// offending description.
func RegisterAll(r Registrar) error {
	// Register the graded submission first; its description is the stable
	// identifier and must survive verbatim.
	if err := r.Register(Submit, SubmitDesc); err != nil {
		return fmt.Errorf("trans: register %q: %w", SubmitDesc, err)
	}

	// Additional candidates, kept for comparison runs.
	if err := r.Register(Baseline, BaselineDesc); err != nil {
		return fmt.Errorf("trans: register %q: %w", BaselineDesc, err)
	}
	if err := r.Register(Experimental, ExperimentalDesc); err != nil {
		return fmt.Errorf("trans: register %q: %w", ExperimentalDesc, err)
	}

	return nil
}
