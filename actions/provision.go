package actions

import (
	"fmt"
	"os"
	"path/filepath"

	"mprxo/botvds/domain"
	"mprxo/botvds/steps"

	"github.com/Songmu/prompter"
	"github.com/fatih/color"
)

// CheckSourceDir refuses to deploy the install directory onto itself. Running
// the provisioner from inside an already-installed tree would otherwise copy
// the tree into itself.
func CheckSourceDir(config domain.Config) error {
	src, err := filepath.Abs(config.SourceDir)
	if err != nil {
		return err
	}

	if src == config.InstallDir {
		return fmt.Errorf("the source directory is the install directory (%s): run the provisioner from the checkout you want to deploy", src)
	}

	return nil
}

// ProvisionActionHandler handles the action for 'botvds provision': the full
// ordered workflow, fail-fast, safe to re-run.
func ProvisionActionHandler(config domain.Config, assumeYes bool) error {

	// preflight guard: no mutation unless running as root
	if os.Geteuid() != 0 {
		return fmt.Errorf("provisioning must be run as root (try: sudo botvds provision)")
	}

	if err := CheckSourceDir(config); err != nil {
		return err
	}

	if !assumeYes {
		ok := prompter.YN(fmt.Sprintf("This will install packages, create the '%s' account and configure the firewall on this host. Continue?", config.ServiceUser), true)
		if !ok {
			return nil
		}
	}

	sections := []struct {
		title string
		steps []domain.Step
	}{
		{"Install OS packages", []domain.Step{
			steps.PackageSyncStep(),
			steps.DependenciesStep(config),
		}},
		{"Provision the service account and directories", []domain.Step{
			steps.ServiceAccountStep(config),
			steps.DirectoriesStep(config),
		}},
		{"Deploy the bot", []domain.Step{
			steps.DeployStep(config),
			steps.VenvStep(config),
			steps.PipInstallStep(config),
		}},
		{"Register the service", []domain.Step{
			steps.ServiceUnitStep(config),
		}},
		{"Secure the host", []domain.Step{
			steps.FirewallStep(config),
			steps.Fail2banStep(),
		}},
		{"Install the management CLI", []domain.Step{
			steps.ManagementCLIStep(config),
		}},
	}

	for _, section := range sections {
		fmt.Printf("\n %s ️ %s...\n\n", color.YellowString("▶"), section.title)

		for _, step := range section.steps {
			if err := step.Run(); err != nil {
				return err
			}
			fmt.Printf(" %s %s\n", color.GreenString("✓"), step.Label)
		}
	}

	fmt.Printf("\n\n %s Provisioning done. Next steps:\n", color.GreenString("✓"))
	for _, item := range config.Checklist {
		fmt.Printf("  → %s\n", item)
	}
	fmt.Println("")

	return nil
}
