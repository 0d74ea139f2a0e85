package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	arg "github.com/alexflint/go-arg"
	humanize "github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/earlyerrors"
	"github.com/kiteco/esparse/kite-go/lang/javascript/parser"
	"github.com/kiteco/esparse/kite-golib/kitectx"
	"github.com/kiteco/esparse/kite-golib/kitelog"
	"github.com/kiteco/esparse/kite-golib/linenumber"
	"github.com/kiteco/esparse/kite-golib/status"
	"github.com/kiteco/esparse/kite-golib/workerpool"
	"github.com/kr/pretty"
	"github.com/montanaflynn/stats"
)

type options struct {
	Files       []string `arg:"positional,required"`
	Module      bool     `arg:"help:parse the sources as modules"`
	Repeat      uint64   `arg:"help:parse the same source file repeatedly (for performance)"`
	Print       bool     `arg:"help:print the AST"`
	Positions   bool     `arg:"help:print node positions along with the AST"`
	Time        bool     `arg:"help:print the parse duration"`
	Profile     string   `arg:"help:filename to write cpu profile"`
	Validate    bool     `arg:"help:report early errors"`
	Dump        bool     `arg:"help:dump the full AST structure"`
	Concurrency int      `arg:"help:number of files parsed at once when given several files"`
	Comments    bool     `arg:"help:list the comments inside each top-level statement"`
	Watch       bool     `arg:"help:parse the file again whenever it changes"`
	Status      bool     `arg:"help:print the parser and validator metrics when done"`
}

func main() {
	args := options{
		Repeat:      1,
		Print:       true,
		Time:        true,
		Validate:    true,
		Concurrency: runtime.NumCPU(),
	}
	arg.MustParse(&args)
	if args.Repeat == 0 {
		args.Repeat = 1
	}

	if args.Profile != "" {
		if !strings.HasSuffix(args.Profile, ".prof") {
			args.Profile = args.Profile + ".prof"
		}

		f, err := os.Create(args.Profile)
		if err != nil {
			log.Fatalln(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if len(args.Files) == 1 {
		parseOne(args)
	} else {
		parseMany(args)
	}
}

func parseOne(args options) {
	path := args.Files[0]
	if err := report(args, path); err != nil {
		if !args.Watch {
			log.Fatalln(err)
		}
		log.Println(err)
	}
	if !args.Watch {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalln(err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		log.Fatalln(err)
	}

	for {
		select {
		case ev := <-watcher.Events:
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Printf("\n-- %s changed\n", ev.Name)
			if err := report(args, path); err != nil {
				log.Println(err)
			}
		case err := <-watcher.Errors:
			log.Fatalln(err)
		}
	}
}

// report parses a single file and prints everything the flags ask for.
func report(args options, path string) error {
	logger := &kitelog.Logger{Default: log.New(os.Stdout, "", 0)}

	start := time.Now()
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Phases.Since("read", start)

	opts := parser.Options{
		Module:    args.Module,
		Locations: true,
		Comments:  args.Comments,
	}

	var times []float64
	var res *parser.Result

	for i := uint64(0); i < args.Repeat; i++ {
		begin := time.Now()
		res, err = parser.Parse(kitectx.Background(), src, opts)
		if err != nil {
			if serr, ok := err.(*parser.SyntaxError); ok {
				fmt.Fprintln(os.Stderr, excerpt(string(src), serr))
			}
			return err
		}
		times = append(times, float64(time.Since(begin)))
	}
	logger.Phases.Record("parse", time.Duration(times[len(times)-1]))

	start = time.Now()
	if args.Dump {
		pretty.Println(res.Program)
	} else if args.Print {
		if args.Positions {
			ast.PrintPositions(res.Program, os.Stdout, "  ")
		} else {
			ast.Print(res.Program, os.Stdout, "  ")
		}
	}

	if args.Comments {
		printComments(res)
	}
	logger.Phases.Since("print", start)

	if args.Validate {
		start = time.Now()
		errs := earlyerrors.Validate(res.Program)
		logger.Phases.Since("validate", start)
		for _, e := range errs {
			fmt.Println(e)
		}
		fmt.Printf("%s early errors\n", humanize.Comma(int64(len(errs))))
	}

	if args.Time {
		fmt.Printf("Parsed %s in %s runs\n", humanize.Bytes(uint64(len(src))), humanize.Comma(int64(len(times))))
		printTimes(times)
		fmt.Println("Last run:")
		logger.Phases.Flush(logger)
	}
	if args.Status {
		status.Get().WriteSummary(os.Stdout)
	}
	return nil
}

// printComments lists the comments inside each top-level statement.
func printComments(res *parser.Result) {
	idx := ast.NewCommentIndex(res.Comments)
	fmt.Printf("%s comments\n", humanize.Comma(int64(idx.Len())))

	var items []ast.Node
	switch prog := res.Program.(type) {
	case *ast.Script:
		for _, s := range prog.Statements {
			items = append(items, s)
		}
	case *ast.Module:
		for _, item := range prog.Items {
			items = append(items, item)
		}
	}
	for _, item := range items {
		for _, c := range idx.InNode(item) {
			fmt.Printf("%s %s %s: %q\n", ast.String(item), item.Span().Start, c.Kind, c.Text)
		}
	}
}

type fileResult struct {
	size        int
	duration    time.Duration
	err         error
	earlyErrors []*earlyerrors.EarlyError
}

func parseMany(args options) {
	results := make([]fileResult, len(args.Files))

	pool := workerpool.New(args.Concurrency)
	defer pool.Stop()

	var jobs []workerpool.Job
	for i, path := range args.Files {
		i, path := i, path
		jobs = append(jobs, func() error {
			src, err := ioutil.ReadFile(path)
			if err != nil {
				return err
			}
			r := &results[i]
			r.size = len(src)

			begin := time.Now()
			res, err := parser.Parse(kitectx.Background(), src, parser.Options{
				Module:    args.Module,
				Locations: true,
			})
			r.duration = time.Since(begin)
			if err != nil {
				r.err = err
				return nil
			}
			if args.Validate {
				r.earlyErrors = earlyerrors.Validate(res.Program)
			}
			return nil
		})
	}
	pool.Add(jobs)
	if err := pool.Wait(); err != nil {
		log.Fatalln(err)
	}

	var times []float64
	var total, failed, invalid int
	for i, r := range results {
		total += r.size
		times = append(times, float64(r.duration))
		switch {
		case r.err != nil:
			failed++
			fmt.Printf("%s: %v\n", args.Files[i], r.err)
		case len(r.earlyErrors) > 0:
			invalid++
			for _, e := range r.earlyErrors {
				fmt.Printf("%s: %v\n", args.Files[i], e)
			}
		}
	}

	fmt.Printf("%s files, %s: %s syntax errors, %s with early errors\n",
		humanize.Comma(int64(len(results))), humanize.Bytes(uint64(total)),
		humanize.Comma(int64(failed)), humanize.Comma(int64(invalid)))
	if args.Time {
		printTimes(times)
	}
	if args.Status {
		status.Get().WriteSummary(os.Stdout)
	}
}

func printTimes(times []float64) {
	fmt.Printf("Parse time:\n")
	f, _ := stats.Median(times)
	fmt.Printf("  Median: %v\n", time.Duration(f))
	f, _ = stats.Mean(times)
	fmt.Printf("  Mean: %v\n", time.Duration(f))
	f, _ = stats.StdDevS(times)
	fmt.Printf("  StdDev: %v\n", time.Duration(f))
	f, _ = stats.Min(times)
	fmt.Printf("  Min: %v\n", time.Duration(f))
	f, _ = stats.Max(times)
	fmt.Printf("  Max: %v\n", time.Duration(f))
}

// excerpt shows the line of the error with a caret under the offending column.
func excerpt(src string, err *parser.SyntaxError) string {
	lines := linenumber.NewUTF16Map(src)
	line, col := lines.LineCol(err.Offset)
	text := lines.LineText(line)
	return fmt.Sprintf("%s:\n%s\n%s^", err, text, strings.Repeat(" ", col))
}
