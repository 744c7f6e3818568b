package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ywlang/ywlib/host"
	"github.com/ywlang/ywlib/text"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type options struct {
	encodings []host.Encoding
	lower     bool
	color     bool
}

func main() {
	var (
		input       = flag.String("text", "", "Text to transcode")
		file        = flag.String("file", "", "Read text from file")
		encName     = flag.String("enc", "all", "Encodings to show (utf8, utf16, utf32, all)")
		lower       = flag.Bool("lower", false, "Round-trip the text through guest memory")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer log.Sync()
	host.SetLogger(log)

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *input == "" && *file == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: yw -text <string> [-enc utf8,utf16,utf32|all] [-lower]")
		fmt.Fprintln(os.Stderr, "       yw -file <path> [-enc ...] [-lower]")
		fmt.Fprintln(os.Stderr, "       yw -i  (interactive mode)")
		os.Exit(1)
	}

	src, err := readInput(*input, *file, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	encs, err := parseEncodings(*encName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := options{
		encodings: encs,
		lower:     *lower,
		color:     term.IsTerminal(int(os.Stdout.Fd())),
	}
	if err := run(context.Background(), os.Stdout, src, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readInput(input, file string, args []string) (string, error) {
	switch {
	case input != "":
		return input, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		return strings.Join(args, " "), nil
	}
}

func run(ctx context.Context, w io.Writer, src string, opts options) error {
	s := text.FromString(src)
	label := func(l string) string { return l }
	if opts.color {
		label = func(l string) string { return typeStyle.Render(l) }
	}

	fmt.Fprintf(w, "Text: %q\n", src)
	writeRows(w, encodingRows(s, opts.encodings), label)

	if !opts.lower {
		return nil
	}

	h, err := host.Default()
	if err != nil {
		return fmt.Errorf("host: %w", err)
	}
	fmt.Fprintln(w)
	for _, enc := range opts.encodings {
		if err := lowerOne(ctx, w, h, s, enc, label); err != nil {
			return err
		}
	}
	return nil
}

func lowerOne(ctx context.Context, w io.Writer, h *host.Host, s text.String, enc host.Encoding, label func(string) string) error {
	handle, err := h.Lower(ctx, s, enc)
	if err != nil {
		return fmt.Errorf("lower %s: %w", enc, err)
	}
	defer h.Drop(handle)

	buf, _ := h.Buffer(handle)
	back, err := h.Lift(handle)
	if err != nil {
		return fmt.Errorf("lift %s: %w", enc, err)
	}
	status := "ok"
	if !back.Equal(s) {
		status = "mismatch"
	}
	fmt.Fprintf(w, "%s: ptr=%#x units=%d bytes=%d %s round-trip=%s\n",
		label("Guest "+enc.String()), buf.Ptr, buf.Units, buf.Bytes(), enc.TypeName(), status)
	return nil
}
