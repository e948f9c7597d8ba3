// Command cellmon is an interactive notebook-style session with colored cell
// execution monitoring. Cells are typed line by line (a blank line executes
// the buffer) and run through a configurable interpreter; whole .ipynb files
// can be executed with :run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/Dataxcelerator/cellmon"
	"github.com/Dataxcelerator/cellmon/config"
	"github.com/Dataxcelerator/cellmon/host/local"
	"github.com/Dataxcelerator/cellmon/notebook"
	"github.com/Dataxcelerator/cellmon/printer"
)

// ANSI color codes for the REPL chrome itself; cell output coloring is the
// printer's job.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", ".cellmon.yaml", "path to the YAML config file")
	debug := flag.Bool("debug", false, "surface real-time output per line")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *debug {
		cfg.Debug = true
	}

	colors := printer.DetectColor(os.Stdout)
	switch cfg.Color {
	case config.ColorAlways:
		colors = true
	case config.ColorNever:
		colors = false
	}

	p := printer.New(os.Stdout,
		printer.WithColors(colors),
		printer.WithErrWriter(os.Stderr),
		printer.WithResultCap(cfg.ResultCap),
	)

	runner := local.NewRunner(local.WithInterpreter(cfg.Interpreter))

	mon := cellmon.NewMonitor().WithPrinter(p)
	if err := mon.Activate(runner, cfg.Debug); err != nil {
		return err
	}

	// Interrupt a running cell with ctrl-c without killing the session.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rl, err := readline.New("")
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	session := &session{
		rl:     rl,
		cfg:    cfg,
		mon:    mon,
		runner: runner,
	}
	return session.loop(ctx)
}

type session struct {
	rl     *readline.Instance
	cfg    config.Config
	mon    *cellmon.Monitor
	runner *local.Runner
	cell   int
}

func (s *session) loop(ctx context.Context) error {
	for {
		s.cell++
		source, quit, err := s.readCell()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if source == "" {
			s.cell--
			continue
		}

		if strings.HasPrefix(source, ":") {
			s.cell--
			if err := s.command(ctx, source); err != nil {
				fmt.Fprintf(os.Stderr, "%s%v%s\n", colorRed, err, colorReset)
			}
			continue
		}

		// Run errors are already surfaced in the post-run summary.
		s.runner.Run(ctx, source)
	}
}

// readCell reads one cell: lines accumulate until a blank line executes the
// buffer. Commands and "q" take effect on the first line.
func (s *session) readCell() (source string, quit bool, err error) {
	var lines []string
	for {
		if len(lines) == 0 {
			s.rl.SetPrompt(fmt.Sprintf("%sIn [%d]:%s ", colorCyan, s.cell, colorReset))
		} else {
			s.rl.SetPrompt(fmt.Sprintf("%s   ...:%s ", colorCyan, colorReset))
		}

		line, err := s.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			lines = nil
			continue
		}
		if errors.Is(err, io.EOF) {
			return "", true, nil
		}
		if err != nil {
			return "", false, err
		}

		if len(lines) == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "q" || trimmed == "exit" {
				return "", true, nil
			}
			if strings.HasPrefix(trimmed, ":") {
				return trimmed, false, nil
			}
			if trimmed == "" {
				return "", false, nil
			}
		}
		if strings.TrimSpace(line) == "" {
			return strings.Join(lines, "\n"), false, nil
		}
		lines = append(lines, line)
	}
}

func (s *session) command(ctx context.Context, input string) error {
	fields := strings.Fields(input)
	switch fields[0] {
	case ":debug":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			return fmt.Errorf("usage: :debug on|off")
		}
		s.cfg.Debug = fields[1] == "on"
		return s.mon.Activate(s.runner, s.cfg.Debug)

	case ":on":
		return s.mon.Activate(s.runner, s.cfg.Debug)

	case ":off":
		s.mon.Deactivate()
		return nil

	case ":status":
		state := "inactive"
		if s.mon.Active() {
			state = "active"
		}
		fmt.Printf("monitor: %s, debug: %v, interpreter: %s\n",
			state, s.cfg.Debug, strings.Join(s.cfg.Interpreter, " "))
		return nil

	case ":run":
		if len(fields) != 2 {
			return fmt.Errorf("usage: :run <file.ipynb>")
		}
		return s.runNotebook(ctx, fields[1])

	default:
		return fmt.Errorf("unknown command %q (:debug, :on, :off, :status, :run)", fields[0])
	}
}

// runNotebook executes every code cell of the notebook at path, in order.
// Execution stops at the first failing cell.
func (s *session) runNotebook(ctx context.Context, path string) error {
	nb, err := notebook.LoadFile(path)
	if err != nil {
		return err
	}
	cells := nb.CodeCells()
	if len(cells) == 0 {
		return fmt.Errorf("%s has no code cells", path)
	}
	for i, cell := range cells {
		if err := s.runner.Run(ctx, cell.Source); err != nil {
			return fmt.Errorf("cell %d of %d failed; stopping: %w", i+1, len(cells), err)
		}
	}
	return nil
}
