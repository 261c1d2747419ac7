package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [document]",
		Short: "Resize a layout interactively in the terminal",
		Long: `Resize a layout interactively in the terminal.

The container starts at the document's size. Arrow keys grow and shrink it,
and every change re-runs the layout so you can watch weights, fills and
anchors react.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runPreview(ctx context.Context, input string) error {
	doc, err := readDocument(ctx, input)
	if err != nil {
		return err
	}
	model, err := NewPreviewModel(doc)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(PreviewModel); ok {
		printInfo("Final size %s", sizeString(m.Width, m.Height))
	}
	return nil
}
