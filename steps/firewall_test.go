package steps

import (
	"strings"
	"testing"
)

func TestFirewallCommands_SSHAllowedBeforeEnable(t *testing.T) {
	cmds := FirewallCommands(testConfig())

	sshIndex, enableIndex := -1, -1
	for i, cmd := range cmds {
		s := cmd.String()
		if strings.Contains(s, "allow OpenSSH") {
			sshIndex = i
		}
		if strings.Contains(s, "enable") {
			enableIndex = i
		}
	}

	if sshIndex == -1 {
		t.Fatalf("no SSH allow rule in %v", cmds)
	}
	if enableIndex == -1 {
		t.Fatalf("no enable command in %v", cmds)
	}
	if sshIndex > enableIndex {
		t.Fatalf("SSH allowed at %d, firewall enabled at %d: lockout", sshIndex, enableIndex)
	}
}

func TestFirewallCommands_OutboundWebAllowed(t *testing.T) {
	cmds := FirewallCommands(testConfig())

	var all []string
	for _, cmd := range cmds {
		all = append(all, cmd.String())
	}
	joined := strings.Join(all, "\n")

	if !strings.Contains(joined, "allow out 80/tcp") || !strings.Contains(joined, "allow out 443/tcp") {
		t.Fatalf("outbound web traffic not allowed:\n%s", joined)
	}
}
