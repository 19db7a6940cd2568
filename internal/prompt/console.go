package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"

	"sigreg/internal/domain"
)

// CaptchaGeneratorURL is where the operator solves the registration captcha.
const CaptchaGeneratorURL = "https://signalcaptchas.org/registration/generate.html"

// ErrNoInput is returned when input ends before anything was typed.
var ErrNoInput = errors.New("no input")

var (
	headingStyle = color.New(color.FgYellow, color.OpBold)
	successStyle = color.New(color.FgGreen)
	failureStyle = color.New(color.FgRed)
)

// Console reads operator input and prints status lines.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	colours bool
	mu      sync.Mutex
}

// New returns a console reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, colours bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, colours: colours}
}

// Captcha prints the captcha instructions and reads the signalcaptcha:// URL.
func (c *Console) Captcha(ctx context.Context) (string, error) {
	c.println(c.render(headingStyle, "CAPTCHA REQUIRED:"))
	c.println("1. Go to: " + CaptchaGeneratorURL)
	c.println("2. Solve the captcha and copy the signalcaptcha:// URL")
	return c.ask(ctx, "Enter captcha URL: ")
}

// VerificationCode asks for the code sent by SMS.
func (c *Console) VerificationCode(ctx context.Context) (string, error) {
	c.println("Check your SMS for a verification code")
	return c.ask(ctx, "Enter verification code: ")
}

// Info prints a plain status line.
func (c *Console) Info(format string, args ...any) {
	c.println(fmt.Sprintf(format, args...))
}

// Success prints a ✓ status line.
func (c *Console) Success(format string, args ...any) {
	c.println(c.render(successStyle, "✓ "+fmt.Sprintf(format, args...)))
}

// Failure prints a ✗ status line.
func (c *Console) Failure(format string, args ...any) {
	c.println(c.render(failureStyle, "✗ "+fmt.Sprintf(format, args...)))
}

// Writer exposes the output stream, e.g. for tables.
func (c *Console) Writer() io.Writer { return c.out }

func (c *Console) ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.mu.Lock()
	fmt.Fprint(c.out, label)
	c.mu.Unlock()

	line, err := c.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return line, nil
}

func (c *Console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

func (c *Console) render(style color.Style, s string) string {
	if !c.colours {
		return s
	}
	return style.Render(s)
}

// Compile-time assertion that Console implements domain.Prompter.
var _ domain.Prompter = (*Console)(nil)
