package shell

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// Sink receives one line of process output at a time.
type Sink func(line string)

// Runner abstracts spawning an external command so callers can be tested
// without real processes. Run blocks until the command exits; stdout and
// stderr lines are delivered to the sinks as they arrive. A nonzero exit
// status is returned as an error.
type Runner interface {
	Run(cmdStr string, outSink Sink, errSink Sink) error
}

// StreamRunner executes commands through the system shell and streams
// their output. It is the production Runner.
type StreamRunner struct {
	// Env holds extra KEY=VALUE pairs prepended to the command.
	Env []string
}

// GetOSEnvirons returns the system environment variables
func GetOSEnvirons() map[string]string {
	environ := make(map[string]string)
	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) == 2 {
			environ[parts[0]] = parts[1]
		}
	}
	return environ
}

// GetOSProxyEnvirons retrieves HTTP and HTTPS proxy environment variables
func GetOSProxyEnvirons() map[string]string {
	osEnv := GetOSEnvirons()
	proxyEnv := make(map[string]string)

	for key, value := range osEnv {
		if strings.Contains(strings.ToLower(key), "http_proxy") ||
			strings.Contains(strings.ToLower(key), "https_proxy") {
			proxyEnv[key] = value
		}
	}

	return proxyEnv
}

// getShell returns the preferred shell, falling back to /bin/sh if bash is not available
func getShell() string {
	shells := []string{"/bin/bash", "/usr/bin/bash", "/bin/sh"}
	for _, shell := range shells {
		if _, err := os.Stat(shell); err == nil {
			return shell
		}
	}
	return "/bin/sh" // fallback
}

// fullCmdStr prepends env assignments (caller-provided plus any proxy
// variables from the host environment) to the command string.
func (r *StreamRunner) fullCmdStr(cmdStr string) string {
	envValStr := ""
	for _, env := range r.Env {
		envValStr += env + " "
	}

	proxyEnv := GetOSProxyEnvirons()
	for key, value := range proxyEnv {
		envValStr += key + "=" + value + " "
	}

	return envValStr + cmdStr
}

// Run executes cmdStr and streams its output. The stdout and stderr pipes
// are drained in separate goroutines so a full OS pipe buffer on one stream
// cannot deadlock the process, but Run itself blocks until the command exits.
func (r *StreamRunner) Run(cmdStr string, outSink Sink, errSink Sink) error {
	fullCmdStr := r.fullCmdStr(cmdStr)

	shell := getShell()
	cmd := exec.Command(shell, "-c", fullCmdStr)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdout pipe for command %s: %w", fullCmdStr, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to get stderr pipe for command %s: %w", fullCmdStr, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command %s: %w", fullCmdStr, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			str := scanner.Text()
			if str != "" && outSink != nil {
				outSink(str)
			}
		}
	}()

	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			str := scanner.Text()
			if str != "" && errSink != nil {
				errSink(str)
			}
		}
	}()

	wg.Wait()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("failed to wait for command %s: %w", fullCmdStr, err)
	}

	return nil
}
