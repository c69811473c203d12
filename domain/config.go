package domain

import "path"

type Config struct {
	ServiceName string
	Description string
	ServiceUser string
	InstallDir  string
	SourceDir   string
	Entrypoint  string
	Packages    []string
	SSHProfile  string
	Checklist   []string
}

func (c Config) LogsDir() string {
	return path.Join(c.InstallDir, "logs")
}

func (c Config) VenvDir() string {
	return path.Join(c.InstallDir, "venv")
}

func (c Config) VenvPython() string {
	return path.Join(c.VenvDir(), "bin", "python3")
}

func (c Config) VenvPip() string {
	return path.Join(c.VenvDir(), "bin", "pip")
}

func (c Config) RequirementsFile() string {
	return path.Join(c.InstallDir, "requirements.txt")
}

func (c Config) EnvFile() string {
	return path.Join(c.InstallDir, ".env")
}

func (c Config) DatabaseFile() string {
	return path.Join(c.InstallDir, "bot.db")
}

func (c Config) UnitPath() string {
	return "/etc/systemd/system/" + c.ServiceName + ".service"
}

// BinPath is where the provisioner installs a copy of itself so that the
// wrapper keeps working wherever the original binary was launched from.
func (c Config) BinPath() string {
	return "/usr/local/bin/botvds"
}

// WrapperPath is the fixed location of the management CLI.
func (c Config) WrapperPath() string {
	return "/usr/local/bin/" + c.ServiceName
}
