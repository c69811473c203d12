package domain

import "fmt"

// Step is one unit of the provisioning workflow, stated as an invariant to
// converge on rather than an action to perform. Check inspects the current
// host state; when it reports the invariant already holds, Apply is skipped,
// which makes the whole workflow safe to re-run. A nil Check always applies.
type Step struct {
	Name  string
	Label string
	Check func() (bool, error)
	Apply func() error
}

func (s Step) Run() error {
	if s.Check != nil {
		satisfied, err := s.Check()
		if err == nil && satisfied {
			fmt.Printf("Step '%s' already satisfied, skipped.\n", s.Name)
			return nil
		}
	}

	if err := s.Apply(); err != nil {
		return fmt.Errorf("step '%s' failed: %s", s.Name, err)
	}

	return nil
}
