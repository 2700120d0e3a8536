// Command cstr exercises the cstr library from the command line:
// windowed search, splitting, partitioning, case transforms, joining,
// and value inspection.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"cstr-go/internal/fn"
	"cstr-go/pkg/corpus"
	"cstr-go/pkg/cstr"
	"cstr-go/pkg/log"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogDB != "" {
		log.MustInit(cfg.LogDB)
		defer log.Close()
	} else {
		log.SetStd()
	}

	app := &cli.App{
		Name:  "cstr",
		Usage: "null-terminated byte-string toolbox",
		Commands: []*cli.Command{
			inspectCommand(),
			findCommand(),
			countCommand(),
			splitCommand(),
			partitionCommand(),
			caseCommand(),
			joinCommand(cfg),
			logsCommand(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "cstr: %v\n", err)
		os.Exit(1)
	}
}

// argValue builds the working value from the first positional argument.
func argValue(c *cli.Context) (*cstr.CString, error) {
	if c.Args().Len() < 1 {
		return nil, fmt.Errorf("missing input argument")
	}
	return cstr.New(c.Args().Get(0))
}

func windowFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "start", Value: 0, Usage: "window start, may be negative"},
		&cli.IntFlag{Name: "end", Value: cstr.End, Usage: "window end, may be negative"},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "print length, repr, hash and classification of a value",
		ArgsUsage: "<text>",
		Action: func(c *cli.Context) error {
			s, err := argValue(c)
			if err != nil {
				return err
			}
			fmt.Printf("len:    %d\n", s.Len())
			fmt.Printf("repr:   %s\n", s.Repr())
			fmt.Printf("hash:   %#016x\n", s.Hash())
			fmt.Printf("alnum:  %v\n", s.IsAlnum())
			fmt.Printf("alpha:  %v\n", s.IsAlpha())
			fmt.Printf("digit:  %v\n", s.IsDigit())
			fmt.Printf("space:  %v\n", s.IsSpace())
			fmt.Printf("case:   %s\n", fn.T(s.IsUpper(), "upper",
				fn.T(s.IsLower(), "lower", "mixed or none")))
			return nil
		},
	}
}

func findCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "first and last offsets of a substring inside a window",
		ArgsUsage: "<text> <substring>",
		Flags:     windowFlags(),
		Action: func(c *cli.Context) error {
			s, sub, err := argPair(c)
			if err != nil {
				return err
			}
			start, end := c.Int("start"), c.Int("end")
			fmt.Printf("find:  %d\n", s.Find(sub, start, end))
			fmt.Printf("rfind: %d\n", s.RFind(sub, start, end))
			return nil
		},
	}
}

func countCommand() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "count non-overlapping occurrences inside a window",
		ArgsUsage: "<text> <substring>",
		Flags:     windowFlags(),
		Action: func(c *cli.Context) error {
			s, sub, err := argPair(c)
			if err != nil {
				return err
			}
			fmt.Println(s.Count(sub, c.Int("start"), c.Int("end")))
			return nil
		},
	}
}

func argPair(c *cli.Context) (*cstr.CString, *cstr.CString, error) {
	if c.Args().Len() < 2 {
		return nil, nil, fmt.Errorf("need <text> and <substring> arguments")
	}
	s, err := cstr.New(c.Args().Get(0))
	if err != nil {
		return nil, nil, err
	}
	sub, err := cstr.New(c.Args().Get(1))
	if err != nil {
		return nil, nil, err
	}
	return s, sub, nil
}

func splitCommand() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "tokenize text; no --sep means whitespace runs",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sep", Usage: "literal separator"},
			&cli.IntFlag{Name: "max", Value: -1, Usage: "maximum number of splits"},
		},
		Action: func(c *cli.Context) error {
			s, err := argValue(c)
			if err != nil {
				return err
			}
			var sep *cstr.CString
			if c.IsSet("sep") {
				sep = cstr.FromString(c.String("sep"))
			}
			tokens, err := s.Split(sep, c.Int("max"))
			if err != nil {
				return err
			}
			log.Debug().Int("tokens", len(tokens)).Msg("split done")
			for _, tok := range tokens {
				fmt.Println(tok.Repr())
			}
			return nil
		},
	}
}

func partitionCommand() *cli.Command {
	return &cli.Command{
		Name:      "partition",
		Usage:     "split around the first (or with --last, the last) separator",
		ArgsUsage: "<text> <separator>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "last", Usage: "partition around the last occurrence"},
		},
		Action: func(c *cli.Context) error {
			s, sep, err := argPair(c)
			if err != nil {
				return err
			}
			var parts cstr.Parts
			if c.Bool("last") {
				parts, err = s.RPartition(sep)
			} else {
				parts, err = s.Partition(sep)
			}
			if err != nil {
				return err
			}
			fmt.Printf("(%s, %s, %s)\n", parts.Before.Repr(), parts.Sep.Repr(), parts.After.Repr())
			return nil
		},
	}
}

func caseCommand() *cli.Command {
	return &cli.Command{
		Name:      "case",
		Usage:     "apply a case transform: upper, lower or swap",
		ArgsUsage: "<transform> <text>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 2 {
				return fmt.Errorf("need <transform> and <text> arguments")
			}
			s, err := cstr.New(c.Args().Get(1))
			if err != nil {
				return err
			}
			switch c.Args().Get(0) {
			case "upper":
				fmt.Println(s.Upper())
			case "lower":
				fmt.Println(s.Lower())
			case "swap":
				fmt.Println(s.SwapCase())
			default:
				return fmt.Errorf("unknown transform %q", c.Args().Get(0))
			}
			return nil
		},
	}
}

func joinCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:  "join",
		Usage: "join corpus lines with a separator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sep", Value: ",", Usage: "separator"},
			&cli.StringFlag{Name: "input", Value: cfg.Input, Usage: "corpus path, - for stdin, .zst supported"},
		},
		Action: func(c *cli.Context) error {
			lines, err := corpus.Load(c.String("input"))
			if err != nil {
				return err
			}
			log.Debug().Int("lines", len(lines)).Msg("corpus loaded")
			fmt.Println(cstr.JoinStrings(cstr.FromString(c.String("sep")), lines))
			return nil
		},
	}
}

func logsCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:  "logs",
		Usage: "show recent entries from the SQLite log sink",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Value: cfg.LogTail, Usage: "number of entries"},
		},
		Action: func(c *cli.Context) error {
			entries, err := log.GetLastNLogs(c.Int("n"))
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%d\t%s\t%s\n", e.ID, e.InsertedAt.Format("2006-01-02 15:04:05"), e.LogData)
			}
			return nil
		},
	}
}
