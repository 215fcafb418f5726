package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var (
	ErrInputClosed     = errors.New("console input closed")
	ErrTooManyAttempts = errors.New("too many invalid inputs")
	errNotANumber      = errors.New("input is not a number")
	errOutOfRange      = errors.New("input is out of range")
)

const (
	movePrompt      = "Player %s, enter your move (1-9): "
	moveRetryNotice = "Please enter a number between 1 and 9.\n"
	playAgainPrompt = "Want to play another round? (y/n): "

	// longer lines are cut; the rest of the line is discarded.
	maxLineLength = 4096
)

type line struct {
	text string
	err  error
}

// Console reads moves from in and writes prompts and the board to out.
type Console struct {
	logger *slog.Logger
	conf   config.Console

	in  io.Reader
	out io.Writer

	startReader sync.Once
	stopReader  sync.Once
	lines       chan line
	done        chan struct{}
}

func New(logger *slog.Logger, conf config.Console, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		conf:   conf,

		in:  in,
		out: out,

		lines: make(chan line),
		done:  make(chan struct{}),
	}
}

// Close stops forwarding input. Later reads report ErrInputClosed.
func (that *Console) Close() {
	that.stopReader.Do(func() {
		close(that.done)
	})
}

// NextMove prompts the player until a number in [1,9] is entered.
func (that *Console) NextMove(ctx context.Context, player entity.Player) (int, error) {
	log := that.logger.With("method", "NextMove", "player", player.String())

	for attempts := 1; ; attempts++ {
		if err := that.print(fmt.Sprintf(movePrompt, player)); err != nil {
			return 0, err
		}

		text, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		position, err := parseMove(text)
		if err == nil {
			return position, nil
		}

		log.Debug("invalid input", "input", text, "error", err)

		if err = that.print(moveRetryNotice); err != nil {
			return 0, err
		}

		if that.conf.MaxAttempts > 0 && attempts >= that.conf.MaxAttempts {
			return 0, fmt.Errorf("%w: %d", ErrTooManyAttempts, attempts)
		}
	}
}

// AskPlayAgain returns true when the answer starts with y or Y.
func (that *Console) AskPlayAgain(ctx context.Context) (bool, error) {
	for {
		if err := that.print(playAgainPrompt); err != nil {
			return false, err
		}

		text, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		answer := strings.TrimSpace(text)
		if answer == "" {
			continue
		}

		return answer[0] == 'y' || answer[0] == 'Y', nil
	}
}

// parseMove takes the first token of the line, like reading an int from a stream.
func parseMove(text string) (int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, errNotANumber
	}

	position, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, fields[0])
	}

	if position < entity.MinPosition || position > entity.MaxPosition {
		return 0, fmt.Errorf("%w: %d", errOutOfRange, position)
	}

	return position, nil
}

// readLine waits for the next input line or for ctx to be done.
func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("console read interrupted: %w", err)
	}

	select {
	case <-that.done:
		return "", ErrInputClosed
	default:
	}

	that.startReader.Do(func() {
		go that.pumpLines()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("console read interrupted: %w", ctx.Err())
	case <-that.done:
		return "", ErrInputClosed
	case next, ok := <-that.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return next.text, next.err
	}
}

// pumpLines forwards input lines until EOF or Close. A read blocked on a terminal
// cannot be interrupted, so it runs apart from readLine and is left behind at exit.
func (that *Console) pumpLines() {
	defer close(that.lines)

	reader := bufio.NewReaderSize(that.in, maxLineLength)
	for {
		text, err := readBoundedLine(reader)
		if errors.Is(err, io.EOF) {
			return
		}

		next := line{text: text}
		if err != nil {
			next = line{err: fmt.Errorf("failed to read console input: %w", err)}
		}

		select {
		case that.lines <- next:
		case <-that.done:
			return
		}

		if err != nil {
			return
		}
	}
}

// readBoundedLine returns at most maxLineLength bytes of the next line.
func readBoundedLine(reader *bufio.Reader) (string, error) {
	chunk, isPrefix, err := reader.ReadLine()
	if err != nil {
		return "", err
	}

	text := string(chunk)
	for isPrefix {
		if _, isPrefix, err = reader.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
	}

	return text, nil
}

func (that *Console) print(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}
