package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// canReadFromStandardInput returns whether there is data to be read
// in stdin.
func canReadFromStandardInput() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeNamedPipe) != 0
}

// input is a named JSON document.
type input struct {
	name string
	data []byte
}

// readInputs reads every file, or stdin if no file is given.
func readInputs(files []string) ([]input, error) {
	if len(files) == 0 {
		if !canReadFromStandardInput() {
			return nil, errors.New("no input: pass files or pipe JSON to stdin")
		}

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "cannot read stdin")
		}
		return []input{{name: "-", data: data}}, nil
	}

	inputs := make([]input, len(files))
	for i, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		inputs[i] = input{name: f, data: data}
	}

	return inputs, nil
}
