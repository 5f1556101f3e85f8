// Command qr1 encodes a string as a QR code version 1 symbol and writes it
// to a terminal or a file.
//
//	qr1 'HELLO WORLD'
//	qr1 -f svg -o hello.svg 'HELLO WORLD'
//	echo 'HELLO WORLD' | qr1 -f png -o hello.png
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/qrwire/qr1"
)

var (
	format  = getopt.StringLong("format", 'f', "", "output format: txt, png, jpeg, svg, pdf")
	output  = getopt.StringLong("output", 'o', "", "output file (default standard output)")
	size    = getopt.IntLong("size", 's', 500, "image size in pixels")
	margin  = getopt.IntLong("margin", 'm', 4, "quiet zone width in modules")
	verbose = getopt.BoolLong("verbose", 'v', "log per-stage encoding diagnostics")
	help    = getopt.BoolLong("help", 'h', "show this help")
)

func main() {
	getopt.SetParameters("[string]")
	getopt.Parse()

	if *help {
		getopt.Usage()
		return
	}

	content, err := readContent()
	if err != nil {
		fatal(err)
	}

	q, err := qr1.New(content)
	if err != nil {
		fatal(err)
	}

	q.Margin = *margin

	if *verbose {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
		q.Logger = log
	}

	out, err := render(q)
	if err != nil {
		fatal(err)
	}

	if *output == "" {
		os.Stdout.Write(out)
		return
	}

	if err := os.WriteFile(*output, out, 0o644); err != nil {
		fatal(errors.Wrapf(err, "writing %s", *output))
	}
}

// readContent takes the text from the argument list, or from a pipe when no
// argument is given.
func readContent() (string, error) {
	if args := getopt.Args(); len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errors.New("no input: pass a string or pipe data in")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading standard input")
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

func render(q *qr1.QRCode) ([]byte, error) {
	f := *format
	if f == "" {
		// Interactive terminals get text output, everything else an image.
		if *output == "" && isatty.IsTerminal(os.Stdout.Fd()) {
			f = "txt"
		} else {
			f = "png"
		}
	}

	switch f {
	case "txt":
		s, err := q.Terminal()
		if err != nil {
			return nil, err
		}

		return []byte(s), nil
	case "png":
		return q.PNG(*size)
	case "jpeg", "jpg":
		return q.JPEG(*size)
	case "svg":
		return q.SVG(*size)
	case "pdf":
		return q.PDF(*size)
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "qr1:", err)
	os.Exit(1)
}
