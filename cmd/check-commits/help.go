package checkcommits

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// helpWrapWidth is the word wrap applied to rendered help text
const helpWrapWidth = 80

// installMarkdownHelp renders the root Long text as markdown when help is
// printed to a terminal. Pipes and test buffers get the raw text.
func installMarkdownHelp(rootCmd *cobra.Command) {
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd && isTerminal(cmd.OutOrStdout()) {
			cmd.Long = renderMarkdown(MsgRootLong)
		}
		defaultHelp(cmd, args)
	})
}

// renderMarkdown returns md unchanged when glamour fails
func renderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(helpWrapWidth),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(rendered, "\n")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
