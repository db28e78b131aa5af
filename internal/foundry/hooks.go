package foundry

import (
	"fmt"
	"strings"

	"github.com/veniger/solidity/internal/execution"
)

// Hooks customizes the project-specific setup, compile, and test steps. The
// working directory is already the project directory when a hook runs; env
// carries the profile-selecting overlay for the call.
type Hooks interface {
	Setup(testDir string) error
	Compile(testDir string, env []string) error
	Test(testDir string, env []string) error
}

// ForgeHooks is the default strategy: forge's standard build and test
// invocations with no extra setup.
type ForgeHooks struct {
	cmd execution.CommandRunner
}

// NewForgeHooks creates the default Hooks implementation.
func NewForgeHooks(cmd execution.CommandRunner) *ForgeHooks {
	return &ForgeHooks{cmd: cmd}
}

// Setup does nothing; forge projects need no preparation beyond dependency
// installation, which CompilerSettings already performs.
func (h *ForgeHooks) Setup(string) error {
	return nil
}

// Compile runs forge build under the selected profile.
func (h *ForgeHooks) Compile(_ string, env []string) error {
	return runTool(h.cmd, []string{"forge", "build"}, env)
}

// Test runs forge test with gas reporting under the selected profile.
func (h *ForgeHooks) Test(_ string, env []string) error {
	return runTool(h.cmd, []string{"forge", "test", "--gas-report"}, env)
}

// runTool invokes an external tool and converts a non-zero exit code into an
// error, since build-tool phases are not exit-code-propagating test scripts.
func runTool(cmd execution.CommandRunner, argv []string, env []string) error {
	code, err := cmd.Run(argv, execution.RunOptions{Env: env})
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("%s exited with code %d", strings.Join(argv, " "), code)
	}
	return nil
}
