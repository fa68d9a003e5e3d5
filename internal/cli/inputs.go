package cli

import (
	"io"

	"github.com/arthur-debert/insightdump/pkg/decode"
	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/sourcemeta"
)

// stdinArg names standard input on the command line
const stdinArg = "-"

// document is a decoded input
type document struct {
	Name  string
	Value any
}

func (d document) meta() dumper.Meta {
	return dumper.Meta{Source: sourcemeta.Meta{File: d.Name}}
}

// readInputs decodes every argument, reading stdin for "-" or when there is
// no argument at all
func readInputs(args []string, stdin io.Reader, stdinFormat decode.Format) ([]document, error) {
	if len(args) == 0 {
		args = []string{stdinArg}
	}

	docs := make([]document, 0, len(args))
	for _, arg := range args {
		var (
			v   any
			err error
		)
		if arg == stdinArg {
			v, err = decode.Decode(stdin, stdinFormat)
			arg = "stdin"
		} else {
			v, err = decode.Load(arg)
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, document{Name: arg, Value: v})
	}
	return docs, nil
}

func hasStdin(args []string) bool {
	if len(args) == 0 {
		return true
	}
	for _, arg := range args {
		if arg == stdinArg {
			return true
		}
	}
	return false
}
