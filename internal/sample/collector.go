package sample

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Collector reads a Sample line by line, prompting on Out for each value and
// re-prompting the same position until the line parses.
type Collector struct {
	In       io.Reader
	Out      io.Writer
	Messages Messages
}

// NewCollector returns a Collector using the messages for locale.
func NewCollector(in io.Reader, out io.Writer, locale string) *Collector {
	return &Collector{In: in, Out: out, Messages: MessagesFor(locale)}
}

// Collect blocks until Size values have been accepted. Invalid lines are
// reported on Out and never reach the sample. It returns ErrInputClosed if In
// is exhausted first, or the context error if ctx is done between prompts.
func (c *Collector) Collect(ctx context.Context) (Sample, error) {
	r := bufio.NewReader(c.In)
	var b Builder

	if c.Messages.Header != "" {
		fmt.Fprintln(c.Out, c.Messages.Header)
	}
	for !b.Full() {
		if err := ctx.Err(); err != nil {
			return Sample{}, err
		}
		pos := b.Next()
		fmt.Fprint(c.Out, c.Messages.PromptFor(pos))

		line, err := readLine(r)
		if err == io.EOF {
			return Sample{}, errors.Wrapf(ErrInputClosed, "got %d of %d values", b.Len(), Size)
		}
		if err != nil {
			return Sample{}, errors.Wrap(err, "reading input")
		}

		v, err := ParseValue(line)
		if err != nil {
			logrus.WithFields(logrus.Fields{"position": pos, "input": line}).Debug("rejected input")
			fmt.Fprintln(c.Out, c.Messages.Invalid)
			continue
		}
		if err := b.Append(v); err != nil {
			return Sample{}, err
		}
		logrus.WithFields(logrus.Fields{"position": pos, "value": v}).Debug("accepted value")
	}
	return b.Sample()
}

// readLine returns the next line without its line ending. Lines have no
// length limit. A final line without a newline is returned as is; io.EOF is
// only returned once nothing is left.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
