package benchmark_test

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-getopt/getopt"
)

// Benchmark short-option parsing against the mainstream CLI stacks.
// The workload is the same everywhere: -v, -o <value>, -n <value>, one
// positional. cobra and urfave carry far more machinery (commands, help,
// usage generation), so this measures the cost of reaching for a full
// framework when only POSIX short options are needed.

func BenchmarkShortOptions_GoGetopt(b *testing.B) {
	args := []string{"bench", "-v", "-o", "out.txt", "-n", "8", "input"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := getopt.New(args, "vo:n:")
		for {
			_, err := p.Next()
			if errors.Is(err, getopt.ErrDone) {
				break
			}
		}
		_ = p.Remaining()
	}
}

func BenchmarkShortOptions_Cobra(b *testing.B) {
	args := []string{"-v", "-o", "out.txt", "-n", "8", "input"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.Flags().StringP("output", "o", "", "Output file")
		rootCmd.Flags().IntP("count", "n", 1, "Iteration count")
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkShortOptions_Urfave(b *testing.B) {
	args := []string{"bench", "-v", "-o", "out.txt", "-n", "8", "input"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file"},
				&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "Iteration count"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Same comparison with clustered flags, which cobra's pflag and urfave
// also support for shorthand-only flags

func BenchmarkClusteredFlags_GoGetopt(b *testing.B) {
	args := []string{"bench", "-abc", "input"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := getopt.New(args, "abc")
		for {
			_, err := p.Next()
			if errors.Is(err, getopt.ErrDone) {
				break
			}
		}
	}
}

func BenchmarkClusteredFlags_Cobra(b *testing.B) {
	args := []string{"-abc", "input"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().BoolP("apply", "a", false, "")
		rootCmd.Flags().BoolP("build", "b", false, "")
		rootCmd.Flags().BoolP("clean", "c", false, "")
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkClusteredFlags_Urfave(b *testing.B) {
	args := []string{"bench", "-abc", "input"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:                   "bench",
			UseShortOptionHandling: true,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "a"},
				&cli.BoolFlag{Name: "b"},
				&cli.BoolFlag{Name: "c"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
