package cmd

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keycoach/keycoach/pkg/strength"
)

// rateResult is the strength report for one candidate. The candidate
// itself is deliberately absent: it is never echoed back.
type rateResult struct {
	Bits     float64 `json:"bits" yaml:"bits"`
	PoolSize int     `json:"pool_size" yaml:"pool_size"`
	Level    string  `json:"level" yaml:"level"`

	level strength.Level
}

func (rateResult) Headers() []string {
	return []string{"bits", "pool", "level", "meter"}
}

func (r rateResult) Rows() [][]string {
	return [][]string{{
		fmt.Sprintf("%.1f", r.Bits),
		strconv.Itoa(r.PoolSize),
		r.Level,
		strength.Meter(r.level, 20),
	}}
}

var rateCmd = &cobra.Command{
	Use:   "rate [candidate]",
	Short: "Estimate the strength of a candidate password",
	Long: `Estimate entropy for a candidate password and classify it from
very weak to very strong.

With no argument the candidate is read from standard input, which keeps
it out of your shell history:

  $ keycoach rate < /dev/tty

The candidate is never echoed back and never stored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var candidate string
		if len(args) == 1 {
			candidate = args[0]
		} else {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if scanner.Scan() {
				candidate = scanner.Text()
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read candidate: %w", err)
			}
		}
		if candidate == "" {
			return fmt.Errorf("no candidate to rate")
		}

		report := strength.Estimate(candidate)
		level := strength.Classify(report.Bits)
		result := rateResult{
			Bits:     report.Bits,
			PoolSize: report.PoolSize,
			Level:    level.String(),
			level:    level,
		}

		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
}
