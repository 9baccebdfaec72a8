package ticketlink

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/ticketlink/pkg/cobrax/topics"
	"github.com/arthur-debert/ticketlink/pkg/style"
)

//go:embed topics/*.md topics/*.txt
var topicFiles embed.FS

// initTopics installs the topic-aware help command. Markdown topics go
// through glamour only when stdout takes color.
func initTopics(rootCmd *cobra.Command, noColor *bool) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	_, err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Renderer: topics.NewMarkdownRenderer(func() bool {
			return style.ColorEnabled(rootCmd.OutOrStdout(), *noColor)
		}),
	})
	return err
}
