package steps

import (
	"bytes"
	"io/ioutil"
	"text/template"

	"mprxo/botvds/domain"
)

const unitTemplate = `[Unit]
Description={{.Description}}
After=network.target

[Service]
Type=simple
User={{.ServiceUser}}
Group={{.ServiceUser}}
WorkingDirectory={{.InstallDir}}
Environment=PATH={{.VenvDir}}/bin:/usr/local/bin:/usr/bin:/bin
ExecStart={{.VenvPython}} {{.Entrypoint}}
Restart=always
RestartSec=10
StandardOutput=journal
StandardError=journal
SyslogIdentifier={{.ServiceName}}

[Install]
WantedBy=multi-user.target
`

// RenderUnit produces the systemd unit content for the bot service. The unit
// is the sole supervision mechanism: restart policy and log routing live
// here, not in the provisioner.
func RenderUnit(config domain.Config) (string, error) {
	tmpl, err := template.New("unit").Parse(unitTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		domain.Config
		VenvDir    string
		VenvPython string
	}{config, config.VenvDir(), config.VenvPython()}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Create a step for writing the service unit and registering it with systemd
func ServiceUnitStep(config domain.Config) domain.Step {
	return domain.Step{
		Name:  "service-unit",
		Label: "Service unit written and enabled",
		Apply: func() error {
			unit, err := RenderUnit(config)
			if err != nil {
				return err
			}

			if err := ioutil.WriteFile(config.UnitPath(), []byte(unit), 0644); err != nil {
				return err
			}

			if err := domain.NewCommand([]string{"systemctl", "daemon-reload"}).Execute(); err != nil {
				return err
			}
			return domain.NewCommand([]string{"systemctl", "enable", config.ServiceName}).Execute()
		},
	}
}
