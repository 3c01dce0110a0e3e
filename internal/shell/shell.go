// Package shell installs the wrapper function that lets trygo change the
// calling shell's directory: the binary prints a command on stdout (the TUI
// renders on stderr) and the wrapper evals it.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Supported lists the shells Setup knows how to integrate.
var Supported = []string{"bash", "zsh", "fish", "nushell", "powershell"}

const fishScript = `function trygo
    # Captures the output of the binary (stdout) which is the "cd" command.
    # The TUI is rendered on stderr, so it doesn't interfere.
    set command (command trygo $argv | string collect)

    if test -n "$command"
        eval $command
    end
end
`

const posixScript = `trygo() {
    # Captures the output of the binary (stdout) which is the "cd" command.
    # The TUI is rendered on stderr, so it doesn't interfere.
    local output
    output=$(command trygo "$@")

    if [ -n "$output" ]; then
        eval "$output"
    fi
}
`

const powerShellScript = `# trygo integration for PowerShell
function trygo {
    # Captures the output of the binary (stdout) which is the "cd" or editor command.
    # The TUI is rendered on stderr, so it doesn't interfere.
    $command = (trygo.exe @args)

    if ($command) {
        Invoke-Expression $command
    }
}
`

const nushellScript = `def --wrapped trygo [...args] {
    # Capture output. Stderr (TUI) goes directly to the terminal.
    let output = (^trygo ...$args)

    if ($output | is-not-empty) {
        # Grab the path out of the emitted command and strip the quotes.
        let $path = ($output | split row ' ').1 | str replace --all "\'" ''
        cd $path
    }
}
`

// Script returns the integration function body for the named shell.
func Script(name string) (string, error) {
	switch strings.ToLower(name) {
	case "fish":
		return fishScript, nil
	case "bash", "zsh":
		return posixScript, nil
	case "powershell":
		return powerShellScript, nil
	case "nushell":
		return nushellScript, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", name, strings.Join(Supported, ", "))
	}
}

// Setup writes the integration script for the named shell and hooks it into
// the shell's startup file where one exists. Progress goes to stderr.
func Setup(name string) error {
	script, err := Script(name)
	if err != nil {
		return err
	}

	switch strings.ToLower(name) {
	case "fish":
		return setupFish(script)
	case "bash":
		return setupRC(script, "trygo.bash", ".bashrc")
	case "zsh":
		return setupRC(script, "trygo.zsh", ".zshrc")
	case "powershell":
		return setupPowerShell(script)
	case "nushell":
		return setupNushell(script)
	}
	return nil
}

// Detect guesses the user's shell from the environment for the first-run
// prompt. Returns false when no supported shell can be identified.
func Detect() (string, bool) {
	if runtime.GOOS == "windows" {
		return "powershell", true
	}
	if os.Getenv("NU_VERSION") != "" {
		return "nushell", true
	}
	sh := os.Getenv("SHELL")
	for _, candidate := range []string{"fish", "zsh", "bash"} {
		if strings.Contains(sh, candidate) {
			return candidate, true
		}
	}
	return "", false
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return dir
}

// setupFish drops the function into fish's autoloaded functions directory;
// no rc edit is needed.
func setupFish(script string) error {
	dir := filepath.Join(configDir(), "fish", "functions")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "trygo.fish")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Fish function created at: %s\n", path)
	fmt.Fprintf(os.Stderr, "You may need to restart your shell or run 'source %s' to apply changes.\n", path)
	return nil
}

// setupRC writes the script under the trygo config dir and appends a source
// line to the given rc file in the user's home, once.
func setupRC(script, fileName, rcName string) error {
	dir := filepath.Join(configDir(), "trygo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Shell function file created at: %s\n", path)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	rcPath := filepath.Join(home, rcName)
	sourceCmd := "source " + path

	content, err := os.ReadFile(rcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "You need to source this file in your ~/%s:\n%s\n", rcName, sourceCmd)
		return nil
	}
	if strings.Contains(string(content), sourceCmd) {
		fmt.Fprintf(os.Stderr, "Configuration already present in ~/%s\n", rcName)
		return nil
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "\n# trygo integration\n%s\n", sourceCmd); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Added configuration to ~/%s\n", rcName)
	return nil
}

func setupPowerShell(script string) error {
	dir := filepath.Join(configDir(), "trygo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "trygo.ps1")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "PowerShell function file created at: %s\n", path)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	profile := filepath.Join(home, "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1")
	legacy := filepath.Join(home, "Documents", "WindowsPowerShell", "Microsoft.PowerShell_profile.ps1")
	if _, err := os.Stat(profile); err != nil {
		if _, err := os.Stat(legacy); err == nil {
			profile = legacy
		}
	}
	if err := os.MkdirAll(filepath.Dir(profile), 0o755); err != nil {
		return err
	}

	// Dot-source the function file from the profile.
	sourceCmd := fmt.Sprintf(". '%s'", path)
	content, _ := os.ReadFile(profile)
	if strings.Contains(string(content), sourceCmd) {
		fmt.Fprintf(os.Stderr, "Configuration already present in %s\n", profile)
		return nil
	}
	f, err := os.OpenFile(profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "\n# trygo integration\n%s\n", sourceCmd); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Added configuration to %s\n", profile)
	fmt.Fprintln(os.Stderr, "If you get an error about running scripts, run: Set-ExecutionPolicy -Scope CurrentUser -ExecutionPolicy RemoteSigned")
	return nil
}

func setupNushell(script string) error {
	dir := filepath.Join(configDir(), "trygo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "trygo.nu")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Nushell function created at: %s\n", path)

	nuConfig := filepath.Join(configDir(), "nushell", "config.nu")
	sourceCmd := "source " + path
	content, err := os.ReadFile(nuConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not find config.nu at %s\nPlease add the following line manually:\n%s\n", nuConfig, sourceCmd)
		return nil
	}
	if strings.Contains(string(content), sourceCmd) {
		fmt.Fprintf(os.Stderr, "Configuration already present in %s\n", nuConfig)
		return nil
	}
	f, err := os.OpenFile(nuConfig, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "\n# trygo integration\n%s\n", sourceCmd); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Added configuration to %s\n", nuConfig)
	return nil
}
