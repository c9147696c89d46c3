package dispatch

import "github.com/lerenn/wre-commit/pkg/document"

// RunFile runs the runner for every document of path.
func (d *realDispatcher) RunFile(req Request, path string) (int, bool, error) {
	docs, err := document.SplitFile(d.FS, path, true)
	if err != nil {
		return 0, false, err
	}

	// A single document runs against the original file
	if len(docs) == 1 {
		outcome, err := d.RunDocument(req, path, docs[0])
		if err != nil {
			return 0, false, err
		}
		return outcome.ExitCode, outcome.Stops(req.RunOnce), nil
	}

	exitCode := 0
	for i, doc := range docs {
		outcome, err := d.runExtracted(req, path, i+1, doc)
		if err != nil {
			return exitCode, false, err
		}

		exitCode = max(exitCode, outcome.ExitCode)
		if outcome.Stops(req.RunOnce) {
			return exitCode, true, nil
		}
	}

	return exitCode, false, nil
}

// runExtracted writes the index-th document of path to a temporary file in
// the working directory and runs the runner against it. The file is removed
// once the runner exits.
func (d *realDispatcher) runExtracted(req Request, path string, index int, doc string) (outcome Outcome, err error) {
	tmpPath, err := d.FS.WriteTempFile(req.WorkDir, d.config.TempPrefix, d.config.TempSuffix, []byte(doc))
	if err != nil {
		return Outcome{}, err
	}
	defer func() {
		if removeErr := d.FS.Remove(tmpPath); removeErr != nil && err == nil {
			err = removeErr
		}
	}()

	d.Debug("Extracted %d. document from %s to %s", index, path, tmpPath)
	return d.RunDocument(req, tmpPath, doc)
}
