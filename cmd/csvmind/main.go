package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/csvmind-ai/csvmind"
	"github.com/csvmind-ai/csvmind/ai"
	"github.com/csvmind-ai/csvmind/ai/openai"
	"github.com/csvmind-ai/csvmind/tools"
	"github.com/csvmind-ai/csvmind/utils"
)

const (
	// the dataset under analysis; the agent is told this path and reads it
	// through generated Python, never through this program
	datasetPath = "data.csv"

	defaultModelName = "gpt-4o"
	envAPIKey        = "OPENAI_API_KEY"
	envModel         = "CSVMIND_MODEL"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	exampleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		fmt.Fprintln(os.Stderr, "Please check your configuration and try again.")
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; the environment may already carry the key
	_ = utils.LoadEnvFile(".env")

	apiKey, err := utils.RequireEnv(envAPIKey)
	if err != nil {
		return fmt.Errorf("%w. Please check your .env file", err)
	}

	if _, err := os.Stat(datasetPath); err != nil {
		return fmt.Errorf("CSV file %q not found. Please ensure your data file exists", datasetPath)
	}

	modelName := os.Getenv(envModel)
	if modelName == "" {
		modelName = defaultModelName
	}

	model := openai.NewModel(modelName, apiKey).WithTemperature(0).WithMaxRetries(3)
	replTool := tools.NewPythonREPLTool(".")

	agent := &csvmind.Agent{
		Name:  "csvmind",
		Model: model,
		Tools: []ai.Tool{*replTool},
		Trace: os.Stdout,
	}

	analyst := csvmind.NewAnalyst(agent, datasetPath,
		csvmind.WithToolDescriptors(csvmind.DescribeTools(agent.Tools)))

	printWelcome(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shell := csvmind.NewShell(analyst, os.Stdin, os.Stdout)
	return shell.Run(ctx)
}

func printWelcome(w io.Writer) {
	rule := ruleStyle.Render(strings.Repeat("=", 50))

	fmt.Fprintln(w, titleStyle.Render("Data Analysis Agent Started!"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "You can ask questions in natural language, such as:")
	for _, example := range []string{
		"Show me basic statistics of the data",
		"Create a survival rate distribution chart",
		"Predict survival rate using age and tell me the accuracy",
		"What are the correlations between different features?",
		"Show me the distribution of passenger classes",
	} {
		fmt.Fprintln(w, exampleStyle.Render("- '"+example+"'"))
	}
	fmt.Fprintln(w, rule)
}
