package steps

import "mprxo/botvds/domain"

// Create a step for syncing the OS package index and upgrading the host
func PackageSyncStep() domain.Step {
	return domain.Step{
		Name:  "package-sync",
		Label: "OS packages synced and upgraded",
		Apply: func() error {
			if err := domain.NewCommand([]string{"apt-get", "update"}).Execute(); err != nil {
				return err
			}
			return domain.NewCommand([]string{"apt-get", "upgrade", "-y"}).Execute()
		},
	}
}

// Create a step for installing the OS-level dependencies (language runtime,
// version control, networking/security tools)
func DependenciesStep(config domain.Config) domain.Step {
	return domain.Step{
		Name:  "dependencies",
		Label: "Required OS packages installed",
		Apply: func() error {
			args := append([]string{"apt-get", "install", "-y"}, config.Packages...)
			return domain.NewCommand(args).Execute()
		},
	}
}
