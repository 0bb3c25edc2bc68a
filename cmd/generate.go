package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keycoach/keycoach/pkg/password"
	"github.com/keycoach/keycoach/pkg/secrand"
	"github.com/keycoach/keycoach/pkg/strength"
)

var (
	genLength       int
	genClasses      []string
	genFromSeed     string
	genCount        int
	genShowStrength bool
)

// generateRow is one generated password with its strength estimate.
type generateRow struct {
	Password string  `json:"password" yaml:"password"`
	Bits     float64 `json:"bits" yaml:"bits"`
	PoolSize int     `json:"pool_size" yaml:"pool_size"`
	Level    string  `json:"level" yaml:"level"`
}

type generateResult []generateRow

func (generateResult) Headers() []string {
	return []string{"password", "bits", "pool", "level"}
}

func (rs generateResult) Rows() [][]string {
	out := make([][]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, []string{
			r.Password,
			fmt.Sprintf("%.1f", r.Bits),
			strconv.Itoa(r.PoolSize),
			r.Level,
		})
	}
	return out
}

// passwordList is the bare output shape: passwords and nothing else.
// JSON and YAML render it as a plain list.
type passwordList []string

func (passwordList) Headers() []string {
	return []string{"password"}
}

func (ps passwordList) Rows() [][]string {
	out := make([][]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, []string{p})
	}
	return out
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random passwords",
	Long: `Generate one or more random passwords from the selected character
classes. Every selected class is represented when the length allows.

With --from-seed, the given characters are worked into the password and
the rest is drawn from the full character catalog. With --show-strength,
each password is printed with its strength estimate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		length := genLength
		if length == 0 {
			length = cfg.DefaultLength
		}
		classes, err := resolveClasses(genClasses)
		if err != nil {
			return err
		}
		if genCount < 1 {
			return fmt.Errorf("count must be at least 1")
		}

		src := secrand.Crypto()
		values := make(passwordList, 0, genCount)
		for i := 0; i < genCount; i++ {
			var value string
			if genFromSeed != "" {
				value, err = password.FromSeed(src, length, genFromSeed)
			} else {
				value, err = password.Generate(src, length, classes)
			}
			if err != nil {
				return err
			}
			values = append(values, value)
		}

		if !genShowStrength {
			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(values))
			return nil
		}

		rows := make(generateResult, 0, len(values))
		for _, value := range values {
			report := strength.Estimate(value)
			rows = append(rows, generateRow{
				Password: value,
				Bits:     report.Bits,
				PoolSize: report.PoolSize,
				Level:    strength.Classify(report.Bits).String(),
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(rows))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&genLength, "length", "l", 0, "password length (default from config, 16)")
	generateCmd.Flags().StringSliceVarP(&genClasses, "classes", "c", nil, "character classes: lower, upper, digit, symbol (default from config)")
	generateCmd.Flags().StringVar(&genFromSeed, "from-seed", "", "characters to build the password around")
	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "how many passwords to generate")
	generateCmd.Flags().BoolVar(&genShowStrength, "show-strength", false, "print bits, pool size, and level with each password")
	rootCmd.AddCommand(generateCmd)
}
