package steps

import (
	"fmt"
	"io/ioutil"
	"os"

	"mprxo/botvds/domain"
	"mprxo/botvds/utils"
)

// WrapperScript is the management CLI installed at a fixed path. It is a thin
// shim: the actual dispatch over the closed command set lives in
// 'botvds manage', so the wrapper stays valid when commands evolve.
func WrapperScript(config domain.Config) string {
	return fmt.Sprintf("#!/bin/sh\nexec %s manage \"$@\"\n", config.BinPath())
}

// Create a step for installing the management CLI: a copy of the running
// binary plus the wrapper shim
func ManagementCLIStep(config domain.Config) domain.Step {
	return domain.Step{
		Name:  "management-cli",
		Label: "Management CLI installed",
		Apply: func() error {
			self, err := os.Executable()
			if err != nil {
				return err
			}

			if self != config.BinPath() {
				if err := utils.CopyFileContents(self, config.BinPath()); err != nil {
					return err
				}
				if err := os.Chmod(config.BinPath(), 0755); err != nil {
					return err
				}
			}

			return ioutil.WriteFile(config.WrapperPath(), []byte(WrapperScript(config)), 0755)
		},
	}
}
