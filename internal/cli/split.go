package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/danieljhkim/blobsplit/internal/engine"
	"github.com/danieljhkim/blobsplit/internal/fsops"
)

// splitReport is the JSON shape emitted for every run in --json mode, so
// the output stays machine-readable on aborts and dry runs too.
type splitReport struct {
	Entries []engine.StatusEntry `json:"entries"`
	Written []string             `json:"written"`
}

// runSplit drives the whole pipeline: read input, parse, show the status
// listing, gate on unsafe paths, confirm, write. Declining the prompt and
// an input with no sections are both success; any unsafe path or write
// failure aborts with a nonzero exit. Errors are returned, not printed;
// main reports them once.
func runSplit(inputFile, outputDir string) error {
	fs := fsops.NewRealFS()

	content, err := readInput(fs, inputFile)
	if err != nil {
		return err
	}

	if err := engine.ValidateOutputDir(outputDir); err != nil {
		return err
	}

	eng := engine.New(fs)

	inspect := eng.Inspect(&engine.InspectRequest{
		Content:   string(content),
		OutputDir: outputDir,
	})

	if len(inspect.Sections) == 0 {
		if jsonOutput {
			return outputJSON(splitReport{Entries: []engine.StatusEntry{}, Written: []string{}})
		}
		PrintWarning("No file sections found. Make sure your input uses '===== FILE: path =====' separators.")
		return nil
	}

	if !jsonOutput {
		PrintSection("Files Detected")
		for _, entry := range inspect.Entries {
			PrintStatusLine(entry)
		}
		fmt.Println()
	}

	if inspect.HasUnsafe {
		if jsonOutput {
			_ = outputJSON(splitReport{Entries: inspect.Entries, Written: []string{}})
		}
		return fmt.Errorf("%w detected, import cancelled", engine.ErrUnsafePath)
	}

	if splitDryRun {
		if jsonOutput {
			return outputJSON(splitReport{Entries: inspect.Entries, Written: []string{}})
		}
		PrintWarning("Dry run: nothing written. Run without --dry-run to import.")
		return nil
	}

	if !splitYes {
		if !confirmProceed(promptIn) {
			PrintWarning("Import cancelled.")
			return nil
		}
	}

	result, err := eng.Write(&engine.WriteRequest{
		Sections:  inspect.Sections,
		OutputDir: outputDir,
	})
	if err != nil {
		if jsonOutput {
			_ = outputJSON(splitReport{Entries: inspect.Entries, Written: result.Written})
		} else if len(result.Written) > 0 {
			PrintWarning("Successfully written files:")
			PrintList(result.Written, 1)
		}
		return err
	}

	if jsonOutput {
		return outputJSON(splitReport{Entries: inspect.Entries, Written: result.Written})
	}

	for _, path := range result.Written {
		PrintInfo(fmt.Sprintf("Written: %s", path))
	}
	fmt.Println()
	PrintSuccess(fmt.Sprintf("All %s written successfully.", PrintCount(len(result.Written), "file", "files")))
	return nil
}

// readInput reads the concatenated blob from the given file, or from
// stdin when the file argument is "-".
func readInput(fs fsops.FS, inputFile string) ([]byte, error) {
	if inputFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := fs.ReadFile(inputFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file not found: %s", inputFile)
		}
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}
