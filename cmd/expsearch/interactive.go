package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/san-kum/expsearch/internal/config"
	"github.com/san-kum/expsearch/internal/input"
	"github.com/san-kum/expsearch/internal/search"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var speedOptions = []float64{0.1, 0.25, 0.5, 1.0, 1.5, 2.0}

// runInteractive asks for data, target and speed, then replays the search.
func runInteractive(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return cmd.Help()
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}

	dataField := input.FormatSequence(cfg.Data)
	targetField := fmt.Sprint(cfg.Target)
	chosenSpeed := cfg.Speed

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sorted data").
				Description("comma separated integers, sorted before searching").
				Value(&dataField).
				Validate(func(s string) error {
					_, err := input.ParseSequence(s)
					return err
				}),
			huh.NewInput().
				Title("Target").
				Value(&targetField).
				Validate(func(s string) error {
					_, err := input.ParseTarget(s)
					return err
				}),
			huh.NewSelect[float64]().
				Title("Seconds per step").
				Options(huh.NewOptions(speedOptions...)...).
				Value(&chosenSpeed),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	data, err := input.ParseSequence(dataField)
	if err != nil {
		return err
	}
	t, err := input.ParseTarget(targetField)
	if err != nil {
		return err
	}
	cfg.Data, cfg.Target, cfg.Speed = data, t, chosenSpeed
	if err := cfg.Validate(); err != nil {
		return err
	}

	res := search.Search(cfg.Data, cfg.Target)
	logger.Debug("interactive search", zap.Int("n", len(cfg.Data)), zap.Int("index", res.Index))
	return replay(cfg, res)
}
