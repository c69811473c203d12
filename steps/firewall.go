package steps

import (
	"strings"

	"mprxo/botvds/domain"
)

// FirewallCommands is the ordered ufw rule sequence. The SSH allow rule must
// come before the enable: enabling first would cut the session provisioning
// the host.
func FirewallCommands(config domain.Config) []domain.Command {
	return []domain.Command{
		domain.NewCommand([]string{"ufw", "default", "deny", "incoming"}),
		domain.NewCommand([]string{"ufw", "default", "allow", "outgoing"}),
		domain.NewCommand([]string{"ufw", "allow", config.SSHProfile}),
		domain.NewCommand([]string{"ufw", "allow", "out", "80/tcp"}),
		domain.NewCommand([]string{"ufw", "allow", "out", "443/tcp"}),
		domain.NewCommand([]string{"ufw", "--force", "enable"}),
	}
}

// Create a step for enabling the firewall with SSH access preserved
func FirewallStep(config domain.Config) domain.Step {
	return domain.Step{
		Name:  "firewall",
		Label: "Firewall enabled, SSH allowed",
		Check: func() (bool, error) {
			status, err := domain.NewCommand([]string{"ufw", "status"}).GetResult()
			if err != nil {
				return false, err
			}
			return strings.Contains(status, "Status: active"), nil
		},
		Apply: func() error {
			for _, cmd := range FirewallCommands(config) {
				if err := cmd.Execute(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// Create a step for activating the brute-force protection daemon
func Fail2banStep() domain.Step {
	return domain.Step{
		Name:  "fail2ban",
		Label: "Brute-force protection active",
		Check: func() (bool, error) {
			state, err := domain.NewCommand([]string{"systemctl", "is-active", "fail2ban"}).GetResult()
			if err != nil {
				return false, err
			}
			return state == "active", nil
		},
		Apply: func() error {
			if err := domain.NewCommand([]string{"systemctl", "enable", "fail2ban"}).Execute(); err != nil {
				return err
			}
			return domain.NewCommand([]string{"systemctl", "start", "fail2ban"}).Execute()
		},
	}
}
