// Package cli runs the interactive menu loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"hotel/internal/session"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"
	"hotel/transport/cli/router"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

const greeting = "\n\n*******************************************************\n" +
	"              User Interface                         \n" +
	"*******************************************************\n"

// Closer releases the database session once the loop is over.
type Closer interface {
	Close()
}

// Console is the terminal the menu talks to.
type Console struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func StdConsole() Console {
	return Console{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

func NewInput(console Console) input.LineInput {
	return input.New(console.In, console.Out)
}

func NewResponse(console Console) response.Writer {
	return response.New(console.Out, console.Err)
}

type CLI struct {
	Router *router.Router
	Input  input.LineInput
	Out    io.Writer
	db     Closer
}

func New(r *router.Router, in input.LineInput, console Console, db Closer) *CLI {
	return &CLI{
		Router: r,
		Input:  in,
		Out:    console.Out,
		db:     db,
	}
}

// Run reads choices until the user exits, input ends or ctx is cancelled, then disconnects.
func (c *CLI) Run(ctx context.Context) {
	defer c.disconnect()

	c.print(greeting)

	sess := session.Session{}

	for ctx.Err() == nil {
		c.print("\n" + c.Router.Menu(sess))

		choice, err := c.Input.ReadInt("Please make your choice: ")
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Error().Err(err).Msg("failed to read choice")
			}

			return
		}

		var outcome router.Outcome

		sess, outcome = c.Router.Handle(ctx, sess, choice)

		log.Debug().
			Int("choice", choice).
			Str("state", sess.State().String()).
			Str("outcome", outcome.String()).
			Msg("choice handled")

		if outcome == router.OutcomeExit {
			return
		}
	}

	log.Warn().Err(ctx.Err()).Msg("menu interrupted")
}

func (c *CLI) disconnect() {
	c.print("Disconnecting from database...")
	c.db.Close()
	c.print("Done\n\nBye !\n")
}

func (c *CLI) print(text string) {
	if _, err := fmt.Fprint(c.Out, text); err != nil {
		log.Error().Err(err).Msg("failed to write output")
	}
}
