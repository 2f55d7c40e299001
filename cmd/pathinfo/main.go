// Command pathinfo normalizes SVG path data and reports its bounding box.
//
// Usage:
//
//	pathinfo [flags] [path data]
//
// Path data is taken from the arguments, from the shapes of an SVG document
// given with -svg, or from standard input. Every path is printed using only
// absolute M, L, C and Z commands, followed by its bounding box.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"honnef.co/go/drawpath"
	"honnef.co/go/drawpath/svgdoc"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "pathinfo:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pathinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile = fs.String("config", "", "read settings from this TOML `file`")
		precision  = fs.Int("precision", 0, "maximum digits after the decimal point (0 for exact)")
		transform  = fs.String("transform", "", "SVG transform `list` to apply to every path")
		svgFile    = fs.String("svg", "", "read the shapes of this SVG `file`")
		stripes    = fs.Bool("stripes", false, "also print every path as cubic stripes")
		verbose    = fs.Bool("v", false, "log debug messages")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg Config
	if *configFile != "" {
		var err error
		if cfg, err = loadConfig(*configFile); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "precision":
			cfg.Precision = *precision
		case "transform":
			cfg.Transform = *transform
		case "stripes":
			cfg.Stripes = *stripes
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	if cfg.Precision < 0 {
		return fmt.Errorf("negative precision %d", cfg.Precision)
	}

	level, err := cfg.level()
	if err != nil {
		return err
	}
	drawpath.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer drawpath.SetLogger(nil)

	aff, err := svgdoc.ParseTransform(cfg.Transform)
	if err != nil {
		return err
	}

	var els []svgdoc.Element
	switch {
	case *svgFile != "":
		if fs.NArg() > 0 {
			return errors.New("path data arguments cannot be combined with -svg")
		}
		if els, err = svgdoc.ReadFile(*svgFile); err != nil {
			return err
		}
	case fs.NArg() > 0:
		p, err := drawpath.ParseSVGTokens(fs.Args())
		if err != nil {
			return err
		}
		els = []svgdoc.Element{{Tag: "path", Path: p}}
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		p, err := drawpath.ParseSVGPath(string(b))
		if err != nil {
			return err
		}
		els = []svgdoc.Element{{Tag: "path", Path: p}}
	}

	opts := drawpath.SVGOptions{MaxPrecision: cfg.Precision}
	for i, el := range els {
		if i > 0 || *svgFile != "" {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			if el.ID != "" {
				fmt.Fprintf(stdout, "%s#%s:\n", el.Tag, el.ID)
			} else {
				fmt.Fprintf(stdout, "%s:\n", el.Tag)
			}
		}
		if err := report(stdout, el.Path, aff, opts, cfg.Stripes); err != nil {
			return err
		}
	}
	return nil
}

func report(w io.Writer, p *drawpath.Path, aff drawpath.Affine, opts drawpath.SVGOptions, stripes bool) error {
	p.Transform(aff)
	if err := p.WriteSVG(w, opts); err != nil {
		return err
	}
	d := p.Dimension()
	num := opts.FormatNumber
	_, err := fmt.Fprintf(w, "\nbounds: x=%s y=%s width=%s height=%s\n", num(d.X), num(d.Y), num(d.Width), num(d.Height))
	if err != nil {
		return err
	}
	if !stripes {
		return nil
	}
	for _, stripe := range p.Stripes() {
		fields := make([]string, len(stripe))
		for i, f := range stripe {
			fields[i] = num(f)
		}
		if _, err := fmt.Fprintf(w, "stripe: %s\n", strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}
