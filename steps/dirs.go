package steps

import (
	"fmt"
	"os"

	"mprxo/botvds/domain"
)

// Create a step for provisioning the install directory and its logs/ subdir,
// owned by the service account
func DirectoriesStep(config domain.Config) domain.Step {
	return domain.Step{
		Name:  "directories",
		Label: "Install directory and logs/ exist",
		Apply: func() error {
			for _, dir := range []string{config.InstallDir, config.LogsDir()} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("mkdir %s: %s", dir, err)
				}
			}
			return chownToServiceUser(config, config.InstallDir)
		},
	}
}

func chownToServiceUser(config domain.Config, path string) error {
	owner := fmt.Sprintf("%s:%s", config.ServiceUser, config.ServiceUser)
	return domain.NewCommand([]string{"chown", "-R", owner, path}).Execute()
}
