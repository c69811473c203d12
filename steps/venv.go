package steps

import (
	"fmt"
	"os"

	"mprxo/botvds/domain"
)

// Create a step for building the virtual environment, owned by the service
// account
func VenvStep(config domain.Config) domain.Step {
	return domain.Step{
		Name:  "venv",
		Label: "Virtual environment exists",
		Check: func() (bool, error) {
			_, err := os.Stat(config.VenvPython())
			return err == nil, nil
		},
		Apply: func() error {
			cmd := domain.NewUserCommand(config.ServiceUser, "", []string{"python3", "-m", "venv", config.VenvDir()})
			return cmd.Execute()
		},
	}
}

// Create a step for installing the pinned dependencies into the virtual
// environment. A missing manifest aborts the workflow: continuing to the
// service setup with a broken environment would only hide the problem.
func PipInstallStep(config domain.Config) domain.Step {
	return domain.Step{
		Name:  "pip-install",
		Label: "Bot dependencies installed in the venv",
		Apply: func() error {
			if _, err := os.Stat(config.RequirementsFile()); err != nil {
				return fmt.Errorf("dependency manifest not found: %s", config.RequirementsFile())
			}

			upgrade := domain.NewUserCommand(config.ServiceUser, "", []string{config.VenvPip(), "install", "--upgrade", "pip"})
			if err := upgrade.Execute(); err != nil {
				return err
			}

			install := domain.NewUserCommand(config.ServiceUser, "", []string{config.VenvPip(), "install", "-r", config.RequirementsFile()})
			return install.Execute()
		},
	}
}
