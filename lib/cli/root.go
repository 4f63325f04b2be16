package cli

import (
	"fmt"
	"github.com/germanoeich/tweet-date/lib/checker"
	"github.com/germanoeich/tweet-date/lib/config"
	"github.com/germanoeich/tweet-date/lib/datefmt"
	"github.com/germanoeich/tweet-date/lib/logging"
	"github.com/germanoeich/tweet-date/lib/metrics"
	"github.com/germanoeich/tweet-date/lib/session"
	"github.com/germanoeich/tweet-date/lib/snowflake"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
)

// Deps lets tests swap out the terminal and the clipboard
type Deps struct {
	Prompter  Prompter
	Clipboard session.Clipboard
	Logger    *logrus.Entry
}

// NewRoot builds the tweet-date command. With an argument it prints one date
// and exits, without one it opens the interactive prompt.
func NewRoot(cfg config.TweetDateConfig, deps Deps) *cobra.Command {
	if deps.Prompter == nil {
		deps.Prompter = PromptuiPrompter{}
	}
	if deps.Clipboard == nil {
		deps.Clipboard = session.SystemClipboard{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.GetLogger("cli")
	}
	formatter := datefmt.NewFormatter(cfg.Location)
	c := checker.NewChecker(formatter)

	root := &cobra.Command{
		Use:           "tweet-date [url-or-id]",
		Short:         "Muestra la fecha de publicación de un tweet a partir de su URL o ID",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer flushMetrics(cfg, deps.Logger)

			if len(args) == 1 {
				return runOnce(cmd.OutOrStdout(), cmd.ErrOrStderr(), c, args[0], deps.Logger)
			}

			s, err := session.NewSession(c, deps.Clipboard, cfg.HistorySize, deps.Logger.WithField("subsystem", "session"))
			if err != nil {
				return err
			}
			return NewInteractive(s, deps.Prompter, cmd.OutOrStdout(), deps.Logger).Run(cmd.Context())
		},
	}
	root.AddCommand(newInspectCommand(cfg, formatter, deps.Logger))
	return root
}

func runOnce(out io.Writer, errOut io.Writer, c *checker.Checker, input string, logger *logrus.Entry) error {
	res, err := c.Check(input)
	if err != nil {
		logger.WithField("input", input).WithError(err).Debug("Rejected input")
		metrics.ObserveLookup(metrics.OutcomeInvalid)
		fmt.Fprintln(errOut, text.FgRed.Sprint(session.InvalidInputMessage))
		return err
	}
	metrics.ObserveLookup(metrics.OutcomeOk)
	fmt.Fprintln(out, res.Formatted)
	return nil
}

func newInspectCommand(cfg config.TweetDateConfig, formatter *datefmt.Formatter, logger *logrus.Entry) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <url-or-id>",
		Short: "Desglosa un ID en fecha, máquina y secuencia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer flushMetrics(cfg, logger)

			components, err := inspect(args[0])
			if err != nil {
				logger.WithField("input", args[0]).WithError(err).Debug("Rejected input")
				metrics.ObserveLookup(metrics.OutcomeInvalid)
				fmt.Fprintln(cmd.ErrOrStderr(), text.FgRed.Sprint(session.InvalidInputMessage))
				return err
			}
			metrics.ObserveLookup(metrics.OutcomeOk)
			RenderComponents(cmd.OutOrStdout(), components, formatter)
			return nil
		},
	}
}

func inspect(input string) (snowflake.Components, error) {
	id, err := snowflake.Extract(input)
	if err != nil {
		return snowflake.Components{}, err
	}
	return snowflake.Dump(id)
}

func flushMetrics(cfg config.TweetDateConfig, logger *logrus.Entry) {
	if !cfg.EnableMetrics {
		return
	}
	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.WithError(err).Error("Failed to write metrics file")
	}
}
