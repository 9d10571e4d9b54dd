package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"monges_backend/internals/features/monks/service"
)

// argPicker: path sudah diberikan lewat argumen, tidak perlu bertanya.
type argPicker struct{ path string }

func (p argPicker) SavePath(context.Context, string) (string, error) { return p.path, nil }
func (p argPicker) OpenPath(context.Context) (string, error) { return p.path, nil }

// promptPicker bertanya path di terminal. Baris kosong (atau EOF) = batal.
type promptPicker struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptPicker(in io.Reader, out io.Writer) *promptPicker {
	return &promptPicker{in: bufio.NewReader(in), out: out}
}

func (p *promptPicker) SavePath(ctx context.Context, suggested string) (string, error) {
	fmt.Fprintf(p.out, "Backup destination (e.g. ./%s, empty to cancel): ", suggested)
	return p.readLine(ctx)
}

func (p *promptPicker) OpenPath(ctx context.Context) (string, error) {
	fmt.Fprint(p.out, "Backup file to restore (empty to cancel): ")
	return p.readLine(ctx)
}

func (p *promptPicker) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// pickerFor: argumen ada → pakai langsung, kalau tidak tanya lewat stdin.
func pickerFor(args []string, in io.Reader, out io.Writer) service.PathPicker {
	if len(args) > 0 {
		return argPicker{path: strings.TrimSpace(args[0])}
	}
	return newPromptPicker(in, out)
}
