package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pesel/internal/domain"
	"github.com/aalvaropc/pesel/internal/usecase/query"
)

const prompt = "Podaj pesel: "

// resultDocument is the JSON shape of a successful decode, used by --format json and --query.
type resultDocument struct {
	PESEL       string `json:"pesel"`
	Sex         string `json:"sex"`
	SexCode     string `json:"sex_code"`
	DateOfBirth string `json:"date_of_birth"`
}

func runDecode(cmd *cobra.Command, args []string, opts *rootOptions) error {
	sess, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer sess.close()

	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		input, err = readLine(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	res, err := sess.decoder.Execute(cmd.Context(), input)
	if err != nil {
		return err
	}

	doc := resultDocument{
		PESEL:       res.PESEL,
		Sex:         sess.label(res.Sex),
		SexCode:     res.Sex.String(),
		DateOfBirth: res.DateOfBirth,
	}

	out := cmd.OutOrStdout()
	if opts.query != "" {
		v, err := query.Select(doc, opts.query)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, v)
		return err
	}
	return printResult(out, res, doc, sess.cfg.Output.Format)
}

// readLine reads a single line without its terminator. EOF before any data
// yields an empty string, which the pipeline reports as empty input.
func readLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", &domain.OpError{
			Op:   "cli.readline",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return "", nil
}

func printResult(w io.Writer, res domain.Result, doc resultDocument, format string) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case domain.FormatPretty, "":
		_, err := fmt.Fprintln(w, res.Summary(doc.Sex))
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
