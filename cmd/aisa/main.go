package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
)

var (
	app = kingpin.New("aisa", "Turn a PDF and instructions into a runnable UI automation script")

	serverCmd = app.Command("server", "Start the AISA API server").Default()

	serverURL = app.Flag("server", "URL of the AISA server").Envar("AISA_SERVER_URL").Default("http://localhost:8000").String()
	apiKey    = app.Flag("api-key", "API key of the AISA server").Envar("AISA_API_KEY").String()
	timeout   = app.Flag("timeout", "Request timeout").Default("10m").Duration()

	createCmd          = app.Command("create", "Create a task and generate its blueprint and script")
	createInstructions = createCmd.Flag("instructions", "What the automation has to do").Short('i').Required().String()
	createPlatform     = createCmd.Flag("platform", "Target platform").Short('p').Default("web").Enum("web", "mobile")
	createPDF          = createCmd.Flag("pdf", "PDF describing the manual task").Required().ExistingFile()

	runCmd = app.Command("run", "Launch the generated script of a ready task")
	runID  = runCmd.Arg("id", "Task ID").Required().String()

	statusCmd = app.Command("status", "Show a task")
	statusID  = statusCmd.Arg("id", "Task ID").Required().String()
	statusBP  = statusCmd.Flag("blueprint", "Also print the blueprint").Bool()

	listCmd    = app.Command("list", "List tasks")
	listLimit  = listCmd.Flag("limit", "Maximum number of tasks").Default("50").Int()
	listOffset = listCmd.Flag("offset", "Number of tasks to skip").Default("0").Int()

	execPlanCmd  = app.Command("exec-plan", "Execute a prepared execution plan (started by the server)").Hidden()
	execPlanPath = execPlanCmd.Flag("plan", "Path to plan.json").Required().String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	var err error
	switch command {
	case serverCmd.FullCommand():
		err = runServer()
	case execPlanCmd.FullCommand():
		os.Exit(runExecPlan(*execPlanPath))
	default:
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, *timeout)
		defer cancel()
		err = runClientCommand(ctx, command)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// shutdownTimeout bounds graceful shutdown of the HTTP server.
const shutdownTimeout = 10 * time.Second
