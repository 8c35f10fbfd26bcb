package main

import (
	"fmt"
	"io"
	"os"

	"github.com/et-services/quoterelay/internal/quote"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.json|->",
	Short: "Render the email for a submission without sending it",
	Long: `Decode a quote request submission and print the subject and body that
would be emailed. Use - to read the submission from stdin.

Example:
  quoterelay preview removal.json
  echo '{"fullName":"Jane"}' | quoterelay preview -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		return preview(cmd.OutOrStdout(), body, quote.NewReferenceGenerator().Next())
	},
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func preview(w io.Writer, body []byte, ref string) error {
	sub, err := quote.Decode(body)
	if err != nil {
		return fmt.Errorf("invalid submission: %w", err)
	}

	if sub.IsSpam() {
		fmt.Fprintln(w, "Submission would be dropped as spam (honeypot field is filled).")
		return nil
	}

	msg := quote.Render(sub, ref)
	fmt.Fprintf(w, "Subject: %s\n\n%s\n", msg.Subject, msg.Text)
	return nil
}
