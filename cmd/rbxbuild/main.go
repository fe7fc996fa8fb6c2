// Command rbxbuild reads a library description and renders a
// rekordbox-format PDB/ANLZ export tree on disk.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theckman/yacspin"
	"golang.org/x/term"

	"github.com/cdjkit/rbxdb/pkg/anlz"
	"github.com/cdjkit/rbxdb/pkg/logging"
	"github.com/cdjkit/rbxdb/pkg/model"
	"github.com/cdjkit/rbxdb/pkg/rbxdb"
)

// libraryFile is the JSON shape rbxbuild reads its input from: a plain,
// caller-authored description of the tracks and playlists to export.
// Analysis payloads aren't part of it; the spec treats beat/waveform
// detection as an external collaborator (spec section 1, non-goals), so
// rbxbuild passes no analyses to the builder: it writes PDB rows for every
// track, plus the auxiliary files, and writes no ANLZ files.
type libraryFile struct {
	Tracks    []model.Track    `json:"tracks"`
	Playlists []model.Playlist `json:"playlists"`
}

func main() {
	debug := flag.Bool("v", false, "Enable verbose (debug) logging")
	trace := flag.Bool("vv", false, "Enable trace logging")
	noColor := flag.Bool("no-color", false, "Disable colored log output")
	profileName := flag.String("profile", "", "DJ profile name written into djprofile.nxs")
	outputDir := flag.String("o", "./export", "Output directory for the PIONEER tree")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: rbxbuild [options] <library.json>")
		fmt.Println("  -v               Enable verbose (debug) logging")
		fmt.Println("  -vv              Enable trace logging")
		fmt.Println("  -no-color        Disable colored log output")
		fmt.Println("  -profile <name>  DJ profile name written into djprofile.nxs")
		fmt.Println("  -o <directory>   Output directory (default './export')")
		os.Exit(1)
	}

	level := logging.LevelInfo
	if *trace {
		level = logging.LevelTrace
	} else if *debug {
		level = logging.LevelDebug
	}
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	useColor := !*noColor && isTTY
	logger := logging.NewSimpleLogger(os.Stdout, level, useColor)

	lib, err := loadLibrary(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load library: %v\n", err)
		os.Exit(1)
	}

	var spinner *yacspin.Spinner
	if isTTY {
		spinner = newSpinner(useColor)
	}

	builder := rbxdb.New(
		rbxdb.WithLogger(logger),
		rbxdb.WithDJProfileName(*profileName),
		rbxdb.WithProgress(func(stage string, current, total int) {
			if spinner == nil || total == 0 {
				return
			}
			_ = spinner.Message(fmt.Sprintf("%s: %d/%d", stage, current, total))
		}),
	)

	if spinner != nil {
		_ = spinner.Start()
	}
	result, err := builder.Build(lib.Tracks, lib.Playlists, nil)
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeResult(*outputDir, result); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write export: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Export written to %s\n", *outputDir)
}

func loadLibrary(path string) (*libraryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lib libraryFile
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &lib, nil
}

func newSpinner(useColor bool) *yacspin.Spinner {
	cfg := yacspin.Config{
		Frequency:     100 * time.Millisecond,
		CharSet:       yacspin.CharSets[11],
		Suffix:        " building export",
		StopCharacter: "✓",
		StopMessage:   "done",
	}
	if useColor {
		cfg.Colors = []string{"fgCyan"}
		cfg.StopColors = []string{"fgGreen"}
	}
	s, err := yacspin.New(cfg)
	if err != nil {
		return nil
	}
	return s
}

func writeResult(outputDir string, result *rbxdb.Result) error {
	pioneerDir := filepath.Join(outputDir, "PIONEER")
	if err := os.MkdirAll(filepath.Join(pioneerDir, "rekordbox"), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(pioneerDir, "rekordbox", "export.pdb"), result.PDB, 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(pioneerDir, "DEVSETTING.DAT"), result.DevSetting[:], 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(pioneerDir, "djprofile.nxs"), result.Profile[:], 0o644); err != nil {
		return err
	}

	anlzRoot := filepath.Join(pioneerDir, "USBANLZ")
	for trackID, files := range result.ANLZ {
		dir := filepath.Join(anlzRoot, anlz.ShardDir(trackID))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "ANLZ0000.DAT"), files.DAT, 0o644); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "ANLZ0000.EXT"), files.EXT, 0o644); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "ANLZ0000.2EX"), files.TwoEX, 0o644); err != nil {
			return err
		}
	}
	return nil
}
