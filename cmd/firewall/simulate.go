package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/firewall/internal/firewall"
	"github.com/vovakirdan/firewall/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagTop      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless games under the autopilot",
	Long: `Play a batch of games without a terminal, one per seed, and print a
summary. Seeds run from --seed to --seed+runs-1, so the same flags always
produce the same table.

Results are kept in memory only.

Examples:
  firewall simulate
  firewall simulate --runs 100 --max-ticks 20000
  firewall simulate --seed 42 --top 5`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 20, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 10000, "Stop a game after this many ticks")
	simulateCmd.Flags().IntVar(&flagTop, "top", 10, "Number of best runs to list")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}
	if flagMaxTicks < 1 {
		return fmt.Errorf("--max-ticks must be at least 1")
	}

	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		return err
	}

	journal, err := storage.OpenJournal()
	if err != nil {
		return err
	}
	defer journal.Close()

	base := resolveSeed()
	logger.Info("starting", "runs", flagRuns, "seed", base, "config", src)
	for i := 0; i < flagRuns; i++ {
		res := firewall.RunHeadless(cfg, base+int64(i), flagMaxTicks, logger)
		if _, err := journal.Record(storage.Run{
			Seed:       res.Seed,
			Ticks:      res.Ticks,
			Score:      res.Score,
			Health:     res.Health,
			Difficulty: res.Difficulty,
			Flashes:    res.Flashes,
			GameOver:   res.GameOver,
			Hash:       res.Hash,
		}); err != nil {
			return err
		}
		logger.Debug("run finished", "seed", res.Seed, "score", res.Score, "ticks", res.Ticks)
	}

	top, err := journal.TopRuns(flagTop)
	if err != nil {
		return err
	}
	stats, err := journal.Stats()
	if err != nil {
		return err
	}

	fmt.Println(runsTable(top))
	fmt.Println(statsTable(stats))
	return nil
}

func runsTable(runs []storage.Run) *table.Table {
	rows := make([][]string, 0, len(runs))
	for i, r := range runs {
		outcome := "survived"
		if r.GameOver {
			outcome = "failure"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			strconv.Itoa(r.Health),
			strconv.Itoa(r.Difficulty),
			outcome,
			fmt.Sprintf("%016x", r.Hash),
		})
	}
	return newTable().
		Headers("#", "SEED", "SCORE", "TICKS", "HEALTH", "DIFFICULTY", "OUTCOME", "HASH").
		Rows(rows...)
}

func statsTable(s storage.Stats) *table.Table {
	return newTable().
		Headers("RUNS", "FAILURES", "HIGH SCORE", "AVG SCORE", "AVG TICKS", "MIN DIFFICULTY", "FLASHES").
		Row(
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.GameOvers),
			strconv.Itoa(s.HighScore),
			fmt.Sprintf("%.1f", s.AvgScore),
			fmt.Sprintf("%.0f", s.AvgTicks),
			strconv.Itoa(s.MinDifficulty),
			strconv.Itoa(s.TotalFlashes),
		)
}

func newTable() *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
