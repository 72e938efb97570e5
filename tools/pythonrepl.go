package tools

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/csvmind-ai/csvmind/ai"
)

const (
	PythonREPLToolName = "python_repl"

	pythonREPLDescription = "A Python shell. Use this to execute python commands. " +
		"Input should be a valid python command. If you want to see the output of a value, " +
		"you should print it out with `print(...)`."
)

const (
	defaultTimeout = 30  // seconds
	maxTimeout     = 300 // 5 minutes
)

// NewPythonREPLTool creates the code-execution tool offered to the reasoning
// engine. Code runs in workDir so relative dataset paths resolve; an empty
// workDir means the current directory.
func NewPythonREPLTool(workDir string) *ai.Tool {
	type pythonREPLInput struct {
		Code    string `json:"code" description:"Python code to execute"`
		Timeout int    `json:"timeout,omitempty" description:"Execution timeout in seconds (default: 30, max: 300)"`
	}

	if workDir == "" {
		workDir = "."
	}

	return ai.NewTool(
		PythonREPLToolName,
		pythonREPLDescription,
		func(input pythonREPLInput) (string, error) {
			return executePython(workDir, input.Code, input.Timeout)
		},
	)
}

// executePython validates parameters and executes Python code
func executePython(workDir, code string, timeout int) (string, error) {
	if code == "" {
		return "", fmt.Errorf("code is required")
	}

	if timeout == 0 {
		timeout = defaultTimeout
	}
	if timeout > maxTimeout {
		return "", fmt.Errorf("timeout exceeds maximum allowed value of %d seconds", maxTimeout)
	}

	return executePythonCode(workDir, code, timeout)
}

// executePythonCode runs the code with python3 in a subprocess with a timeout.
// The script lives in a temporary directory that is removed afterwards; the
// process itself runs in workDir.
func executePythonCode(workDir, code string, timeoutSec int) (string, error) {
	tempDir, err := os.MkdirTemp("", "python-repl-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	scriptPath := filepath.Join(tempDir, "script.py")
	if err := os.WriteFile(scriptPath, []byte(code), 0644); err != nil {
		return "", fmt.Errorf("failed to write script file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "python3", scriptPath)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(),
		"PYTHONUNBUFFERED=1",
		"PYTHONDONTWRITEBYTECODE=1",
	)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("execution timeout: code execution exceeded %d seconds limit", timeoutSec)
	}

	stdoutStr := stdout.String()
	stderrStr := stderr.String()

	if err != nil {
		var output strings.Builder
		output.WriteString("Python execution failed:\n\n")

		if stderrStr != "" {
			output.WriteString("STDERR:\n")
			output.WriteString(stderrStr)
			output.WriteString("\n")
		}
		if stdoutStr != "" {
			output.WriteString("STDOUT:\n")
			output.WriteString(stdoutStr)
			output.WriteString("\n")
		}
		output.WriteString(fmt.Sprintf("Exit error: %v", err))

		return "", fmt.Errorf("%s", output.String())
	}

	var output strings.Builder
	if stdoutStr != "" {
		output.WriteString(stdoutStr)
	}
	if stderrStr != "" {
		if output.Len() > 0 {
			output.WriteString("\n\nSTDERR:\n")
		}
		output.WriteString(stderrStr)
	}
	if output.Len() == 0 {
		output.WriteString("Code executed successfully with no output")
	}

	return output.String(), nil
}
