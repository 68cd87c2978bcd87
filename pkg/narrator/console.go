package narrator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/cbodonnell/grouphell/pkg/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Console is a Narrator that prompts on a text stream, one answer per line.
// Input is scanned on a background goroutine so a prompt can be abandoned
// when its context is cancelled.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	printer  *message.Printer
	lines    chan inputLine
	readOnce sync.Once
}

type inputLine struct {
	text string
	err  error
}

// NewConsoleOptions contains options for creating a new Console.
type NewConsoleOptions struct {
	In       io.Reader
	Out      io.Writer
	Language language.Tag
}

func NewConsole(opts NewConsoleOptions) *Console {
	return &Console{
		in:      bufio.NewScanner(opts.In),
		out:     opts.Out,
		printer: message.NewPrinter(opts.Language),
		lines:   make(chan inputLine, 1),
	}
}

func (c *Console) RequestPlayerCount(ctx context.Context) (int, error) {
	c.say(c.printer.Sprintf("Welcome to Group Project Hell! How many players are playing?"))
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := ParsePlayerCount(line)
		if err != nil {
			c.reject(err)
			continue
		}
		return n, nil
	}
}

func (c *Console) RequestPlayerName(ctx context.Context, ordinal int, taken []string) (string, error) {
	for {
		c.say(c.printer.Sprintf("Please type the name for player %d:", ordinal))
		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		name, err := ValidateName(line, taken)
		if err != nil {
			c.reject(err)
			continue
		}
		return name, nil
	}
}

func (c *Console) RequestPick(ctx context.Context, player string, roster []string) (string, error) {
	for {
		c.say(c.printer.Sprintf("Please input the student %s picked (%s):", player, strings.Join(roster, ", ")))
		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		pick, err := ValidatePick(player, line, roster)
		if err != nil {
			c.reject(err)
			continue
		}
		return pick, nil
	}
}

func (c *Console) Announce(_ context.Context, announcement types.Announcement) {
	c.say(Phrase(c.printer, announcement))
}

func (c *Console) say(line string) {
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		log.Error("Failed to write to narrator console: %v", err)
	}
}

func (c *Console) reject(err error) {
	log.Debug("Rejected narrator input: %v", err)
	c.say(err.Error())
}

// readLine returns the next input line. It returns io.ErrUnexpectedEOF
// when the input ends before an answer was given, and the context error
// as soon as ctx is done.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.readOnce.Do(func() {
		go c.scanLines()
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.ErrUnexpectedEOF
		}
		return line.text, line.err
	}
}

// scanLines feeds c.lines until the input ends. The last value carries the
// read error, after which the channel is closed.
func (c *Console) scanLines() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- inputLine{text: c.in.Text()}
	}
	if err := c.in.Err(); err != nil {
		c.lines <- inputLine{err: fmt.Errorf("failed to read narrator input: %w", err)}
		return
	}
	c.lines <- inputLine{err: io.ErrUnexpectedEOF}
}
