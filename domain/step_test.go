package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestStep_SkipsWhenCheckSatisfied(t *testing.T) {
	applied := false
	step := Step{
		Name:  "noop",
		Check: func() (bool, error) { return true, nil },
		Apply: func() error { applied = true; return nil },
	}

	if err := step.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatalf("apply ran despite a satisfied check")
	}
}

func TestStep_AppliesWhenCheckUnsatisfied(t *testing.T) {
	applied := false
	step := Step{
		Name:  "noop",
		Check: func() (bool, error) { return false, nil },
		Apply: func() error { applied = true; return nil },
	}

	if err := step.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatalf("apply did not run")
	}
}

func TestStep_AppliesWhenCheckFails(t *testing.T) {
	applied := false
	step := Step{
		Name:  "noop",
		Check: func() (bool, error) { return false, errors.New("cannot inspect") },
		Apply: func() error { applied = true; return nil },
	}

	if err := step.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatalf("an inconclusive check must fall through to apply")
	}
}

func TestStep_WrapsApplyError(t *testing.T) {
	step := Step{
		Name:  "firewall",
		Apply: func() error { return errors.New("ufw not found") },
	}

	err := step.Run()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "firewall") {
		t.Fatalf("error does not name the step: %v", err)
	}
}
