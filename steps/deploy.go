package steps

import (
	"mprxo/botvds/domain"
	"mprxo/botvds/utils"
)

// Create a step for copying the source tree into the install directory and
// fixing its ownership. The venv and the logs are runtime state and are never
// overwritten by a deployment.
func DeployStep(config domain.Config) domain.Step {
	return domain.Step{
		Name:  "deploy",
		Label: "Source tree deployed to the install directory",
		Apply: func() error {
			skip := []string{"venv", "logs", ".git"}
			if err := utils.CopyTree(config.SourceDir, config.InstallDir, skip); err != nil {
				return err
			}
			return chownToServiceUser(config, config.InstallDir)
		},
	}
}
