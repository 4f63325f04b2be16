package cli

import (
	"context"
	"errors"
	"fmt"
	"github.com/germanoeich/tweet-date/lib/session"
	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
	"io"
	"strings"
)

const (
	CmdPaste   = ":paste"
	CmdHistory = ":history"
	CmdHelp    = ":help"
	CmdQuit    = ":quit"
)

const helpText = `Escribe una URL o un ID y pulsa Enter.
  :paste    pegar desde el portapapeles
  :history  ver las últimas consultas
  :quit     salir`

type Interactive struct {
	session  *session.Session
	prompter Prompter
	out      io.Writer
	logger   *logrus.Entry
}

func NewInteractive(s *session.Session, prompter Prompter, out io.Writer, logger *logrus.Entry) *Interactive {
	return &Interactive{
		session:  s,
		prompter: prompter,
		out:      out,
		logger:   logger,
	}
}

// Run reads submissions until the user quits or ctx is done. Each
// submission finishes before the next prompt is shown.
func (i *Interactive) Run(ctx context.Context) error {
	RenderBanner(i.out)
	i.logger.Debug("Interactive session started")
	field := ""
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := i.prompter.Prompt(InputLabel, field)
		field = ""
		if err != nil {
			if isExit(err) {
				return nil
			}
			i.logger.WithError(err).Error("Prompt failed")
			return err
		}

		switch strings.TrimSpace(line) {
		case CmdQuit:
			return nil
		case CmdHelp:
			fmt.Fprintln(i.out, helpText)
		case CmdHistory:
			RenderHistory(i.out, i.session.History())
		case CmdPaste:
			// on failure this is whatever was there before
			i.session.Paste()
			field = strings.TrimSpace(i.session.State().Input)
		default:
			i.session.SetInput(line)
			RenderState(i.out, i.session.Submit())
		}
	}
}

func isExit(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF)
}
