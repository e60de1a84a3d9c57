package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfgFile is an optional explicit config path from --config.
var cfgFile string

// rootCmd is the base command; subcommands hang off it in their own files.
var rootCmd = &cobra.Command{
	Use:   "structbench",
	Short: "Learn how linear data structures behave, in theory and on the clock",
	Long: `structbench is an educational toolkit for stacks, queues and linked lists.

It explains the Big-O complexity of each operation, times the operations in
their worst-case configurations across growing input sizes, infers the
observed growth pattern from consecutive timing ratios, and renders the
results as growth charts.

Growth classification is a noise-tolerant heuristic, not a proof: a high
constant factor can land an operation in the wrong band, and that is fine —
the point is to see the curves, not to grade them.`,
}

// Execute runs the CLI. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./structbench.yaml)")
	rootCmd.PersistentFlags().IntSlice("sizes", nil, "input sizes to benchmark (ascending)")
	rootCmd.PersistentFlags().Int("iterations", 0, "timed repetitions per benchmark")
	rootCmd.PersistentFlags().StringP("output", "o", "", "directory for generated charts")

	_ = viper.BindPFlag("sizes", rootCmd.PersistentFlags().Lookup("sizes"))
	_ = viper.BindPFlag("iterations", rootCmd.PersistentFlags().Lookup("iterations"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig loads defaults, the optional config file, and STRUCTBENCH_*
// environment variables. Flags win over env, env over file, file over
// defaults — viper's usual precedence.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("structbench")
	}

	viper.SetEnvPrefix("STRUCTBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("sizes", []int{100, 500, 1000, 5000, 10000})
	viper.SetDefault("iterations", 10)
	viper.SetDefault("output", "output")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			cobra.CheckErr(err)
		}
	}
}

// benchSizes returns the configured size sweep. Flag values of 0 mean
// "unset" and fall through to viper's defaults.
func benchSizes() []int {
	return viper.GetIntSlice("sizes")
}

func benchIterations() int {
	return viper.GetInt("iterations")
}

func outputDir() string {
	return viper.GetString("output")
}
