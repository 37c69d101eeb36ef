package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// Input reads one move number per line.
type Input struct {
	reader *bufio.Reader
}

func NewInput(r io.Reader) *Input {
	return &Input{reader: bufio.NewReader(r)}
}

// ReadMove - returns the next number typed by the player. Blank lines are skipped.
// Range checking is left to the board.
func (that *Input) ReadMove() (int, error) {
	for {
		line, tooLong, err := that.readLine()
		if errors.Is(err, io.EOF) {
			return 0, apperror.ErrInputClosed
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		if tooLong {
			return 0, fmt.Errorf("%w: line longer than %d bytes", apperror.ErrInvalidInput, that.reader.Size())
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		move, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
		}

		return move, nil
	}
}

// readLine returns the next line without its line ending.
// A line that does not fit the buffer is consumed to its end and reported as tooLong.
func (that *Input) readLine() (string, bool, error) {
	line, isPrefix, err := that.reader.ReadLine()
	if err != nil {
		return "", false, err
	}

	if !isPrefix {
		return string(line), false, nil
	}

	for isPrefix {
		if _, isPrefix, err = that.reader.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", false, err
		}
	}

	return "", true, nil
}
