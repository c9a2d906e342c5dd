// Package training launches object-detection training runs through the
// external ultralytics command line.
package training

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"logix-research/internal/domain/model"
	"logix-research/internal/domain/ports"
)

// DefaultSpec is the fixed configuration of the detection training run.
func DefaultSpec() model.TrainingSpec {
	return model.TrainingSpec{
		Weights:   "yolov8n.pt",
		DataPath:  "config.yaml",
		Epochs:    75,
		ImageSize: 640,
		Batch:     8,
		RunName:   "aether_vision_final_run",
	}
}

// Runner starts an external process and waits for it.
type Runner func(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error

// ExecRunner runs the command with os/exec, killing it when ctx ends.
func ExecRunner(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Trainer drives the ultralytics CLI.
type Trainer struct {
	command string
	run     Runner
	stdout  io.Writer
	stderr  io.Writer
	logger  ports.Logger
}

var _ ports.Trainer = (*Trainer)(nil)

// NewTrainer constructs a Trainer invoking command through run. Child
// process output is streamed to stdout and stderr.
func NewTrainer(command string, run Runner, stdout, stderr io.Writer, logger ports.Logger) *Trainer {
	if run == nil {
		run = ExecRunner
	}
	return &Trainer{
		command: command,
		run:     run,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
	}
}

// Train validates the dataset config and runs the training process.
func (t *Trainer) Train(ctx context.Context, spec model.TrainingSpec) error {
	ds, err := LoadDataset(spec.DataPath)
	if err != nil {
		return err
	}
	t.logger.Info(ctx, "starting training run",
		"weights", spec.Weights,
		"data", spec.DataPath,
		"classes", len(ds.Names),
		"epochs", spec.Epochs,
		"run", spec.RunName,
	)

	if err := t.run(ctx, t.command, Args(spec), t.stdout, t.stderr); err != nil {
		return fmt.Errorf("%s train: %w", t.command, err)
	}

	t.logger.Info(ctx, "training run finished", "run", spec.RunName)
	return nil
}

// Args builds the ultralytics CLI arguments for spec.
func Args(spec model.TrainingSpec) []string {
	return []string{
		"detect", "train",
		"model=" + spec.Weights,
		"data=" + spec.DataPath,
		"epochs=" + strconv.Itoa(spec.Epochs),
		"imgsz=" + strconv.Itoa(spec.ImageSize),
		"batch=" + strconv.Itoa(spec.Batch),
		"name=" + spec.RunName,
	}
}

// ReportFailure prints the training diagnostic block for err.
func ReportFailure(w io.Writer, err error) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- ERROR DURING TRAINING ---")
	fmt.Fprintf(w, "Error: %v\n", err)
	fmt.Fprintln(w, "Please check if your dataset folders are correctly populated.")
}
