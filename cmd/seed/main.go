// Command seed imports profiles from TOML files into the portrait database.
package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/llehouerou/portrait/internal/errmsg"
	"github.com/llehouerou/portrait/internal/seed"
	"github.com/llehouerou/portrait/internal/state"
)

func main() {
	dbPath := flag.String("db", "", "database file (default: the XDG data dir)")
	dryRun := flag.BoolP("dry-run", "n", false, "parse files and list profiles without saving")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] profiles.toml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*dbPath, *dryRun, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dbPath string, dryRun bool, paths []string) error {
	var st state.Interface
	if !dryRun {
		var mgr *state.Manager
		var err error
		if dbPath != "" {
			mgr, err = state.OpenPath(dbPath)
		} else {
			mgr, err = state.Open()
		}
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
		}
		defer mgr.Close()
		st = mgr
	}

	for _, path := range paths {
		subjects, err := seed.Load(path)
		if err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpProfileImport, path, err))
		}

		if dryRun {
			for _, s := range subjects {
				fmt.Printf("%s\t%s\t%d photos\n", s.Kind, s.Title(), len(s.Photos))
			}
			continue
		}

		n, err := seed.Import(st, subjects)
		if err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpProfileImport, path, err))
		}
		fmt.Printf("%s: imported %d profiles\n", path, n)
	}
	return nil
}
