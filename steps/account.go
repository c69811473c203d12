package steps

import (
	"os/user"

	"mprxo/botvds/domain"
)

// Create a step for provisioning the service account. The account is a
// non-login system user owning the install directory; it is never removed by
// this tool.
func ServiceAccountStep(config domain.Config) domain.Step {
	return domain.Step{
		Name:  "service-account",
		Label: "Service account exists",
		Check: func() (bool, error) {
			_, err := user.Lookup(config.ServiceUser)
			return err == nil, nil
		},
		Apply: func() error {
			return domain.NewCommand([]string{
				"adduser",
				"--system", "--group",
				"--home", config.InstallDir,
				"--shell", "/usr/sbin/nologin",
				config.ServiceUser,
			}).Execute()
		},
	}
}
