package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const explainText = `# Exponential search

Exponential search finds a target in a **sorted** array in two phases.

## Phase 1: bounding

1. If the array is empty, stop.
2. If the first element equals the target, it is found at index 0.
3. Start with ` + "`i = 1`" + ` and double ` + "`i`" + ` while ` + "`i < n`" + ` and
   ` + "`arr[i] <= target`" + `. Each doubling is one probe.
4. The target can now only lie in ` + "`[i/2, min(i, n-1)]`" + `.

## Phase 2: binary search

Plain binary search inside that window. Each step checks the middle index
and discards half of the window.

Total cost is ` + "`O(log i)`" + ` comparisons where ` + "`i`" + ` is the target's position,
which beats plain binary search when the target sits near the front.

## Bar colors

| Color  | Meaning                               |
|--------|---------------------------------------|
| red    | not examined yet                      |
| yellow | already passed by a probe             |
| green  | index being probed                    |
| blue   | inside the binary search window       |
| orange | middle index being checked            |
| purple | target found                          |

Colors are for the default ` + "`lab`" + ` theme.

## Controls

` + "`space`/`p`" + ` pause, ` + "`[`/`]`" + ` step back and forward, ` + "`r`" + ` restart,
` + "`t`" + ` change theme, ` + "`?`" + ` help, ` + "`q`" + ` quit.
`

func explain(cmd *cobra.Command, args []string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(explainText)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
