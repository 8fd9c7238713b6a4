package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osuushi/polycut/advanced"
	"github.com/osuushi/polycut/internal/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Reads a polygon size and a list of cuts, and prints the diagonals that
// triangulate the pieces: the count on the first line, then one "i j" per line.
//
//	8
//	2
//	5 1
//	1 6
//
// Cuts must not cross. This is not validated up front; a crossing cut is
// reported when it's reached.

type options struct {
	input   string
	png     string
	imgcat  bool
	check   bool
	verbose bool
	size    int
}

func main() {
	app := kingpin.New("polycut", "Cut a convex polygon along diagonals and triangulate the pieces.")
	var opts options
	app.Arg("input", "Input file (defaults to stdin).").StringVar(&opts.input)
	app.Flag("png", "Write a rendering of the cut polygon to this file.").StringVar(&opts.png)
	app.Flag("imgcat", "Draw the cut polygon in the terminal (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("check", "Verify the boundary store after every cut.").BoolVar(&opts.check)
	app.Flag("verbose", "Dump the fragments to stderr after every cut.").Short('v').BoolVar(&opts.verbose)
	app.Flag("size", "Rendering size in pixels.").Default("600").IntVar(&opts.size)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log, err := logger.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	in := io.Reader(os.Stdin)
	if opts.input != "" {
		file, err := os.Open(opts.input)
		if err != nil {
			log.Fatal("could not open input", zap.Error(err))
		}
		defer file.Close()
		in = file
	}

	if err := run(in, os.Stdout, opts, log); err != nil {
		log.Fatal("polycut failed", zap.Error(err))
	}
}

func run(in io.Reader, out io.Writer, opts options, log *zap.Logger) (err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	n, cuts, err := readInput(in)
	if err != nil {
		return err
	}
	log.Debug("read input", zap.Int("n", n), zap.Int("k", len(cuts)))

	polygon, err := advanced.NewPolygon(n, advanced.WithLogger(log))
	if err != nil {
		return err
	}
	for index, cut := range cuts {
		if err := polygon.Cut(cut.I, cut.J); err != nil {
			return errors.Wrapf(err, "cut %d", index+1)
		}
		if opts.check {
			if err := polygon.CheckInvariants(); err != nil {
				return errors.Wrapf(err, "after cut %d", index+1)
			}
		}
		if opts.verbose {
			fmt.Fprintf(os.Stderr, "After cut %d (%d %d):\n%s", index+1, cut.I, cut.J, polygon.DbgString())
		}
	}

	diagonals := polygon.Triangulate()
	fmt.Fprintln(out, len(diagonals))
	for _, diagonal := range diagonals {
		fmt.Fprintln(out, diagonal)
	}

	if opts.png != "" {
		if err := writePNG(polygon, opts.png, opts.size); err != nil {
			return err
		}
		log.Info("wrote rendering", zap.String("path", opts.png))
	}
	if opts.imgcat {
		if err := polygon.DbgDraw(opts.size); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(polygon *advanced.Polygon, path string, size int) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating rendering")
	}
	err = polygon.Render(file, size)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return errors.Wrap(err, "writing rendering")
}
