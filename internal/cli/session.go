// Package cli runs an interactive gostddev session: it collects a sample from
// the user, computes its statistics and reports the result.
package cli

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mwiater/gostddev/internal/config"
	"github.com/mwiater/gostddev/internal/sample"
	"github.com/mwiater/gostddev/internal/stats"
)

// Run drives one session as configured by cfg, reading answers from in and
// writing prompts and the report to out. It blocks until the sample is
// complete, input ends, or the user quits the terminal UI.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	msgs := sample.MessagesFor(cfg.Locale)

	var (
		s   sample.Sample
		res stats.Result
	)
	if cfg.TUI {
		s, res, err = runTUI(ctx, in, out, msgs)
	} else {
		s, res, err = runPlain(ctx, in, out, msgs)
	}
	if err != nil {
		logrus.WithError(err).Debug("session ended without a result")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"values":   s.String(),
		"mean":     res.Mean,
		"variance": res.Variance,
		"std_dev":  res.StdDev,
	}).Info("computed standard deviation")

	return sample.Report(out, s, res.StdDev, msgs)
}

// runPlain prompts line by line on out.
func runPlain(ctx context.Context, in io.Reader, out io.Writer, msgs sample.Messages) (sample.Sample, stats.Result, error) {
	c := &sample.Collector{In: in, Out: out, Messages: msgs}
	s, err := c.Collect(ctx)
	if err != nil {
		return sample.Sample{}, stats.Result{}, err
	}
	res, err := stats.Compute(s.Values())
	if err != nil {
		return sample.Sample{}, stats.Result{}, err
	}
	return s, res, nil
}

// setupLogging points logrus at the configured log file when debug is on and
// silences it otherwise, so the terminal only ever shows the session itself.
func setupLogging(cfg config.Config) (func(), error) {
	if !cfg.Debug {
		logrus.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(cfg.LogFile, "gostddev")
	if err != nil {
		return nil, errors.Wrap(err, "could not open log file")
	}
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return func() {
		logrus.SetOutput(io.Discard)
		f.Close()
	}, nil
}
