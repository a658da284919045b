/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/internal/iofs"
	"github.com/gnames/gnpot/internal/iologger"
	app "github.com/gnames/gnpot/pkg"
	"github.com/gnames/gnpot/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
	logFile io.Closer
)

// getRootCmd returns the base command when called without any subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnpot",
		Short:   "GNpot renders LAMMPS commands from interatomic potential records",
		Long: `GNpot reads potential-LAMMPS records kept in a local record store,
finds them by structured fields and generates LAMMPS input commands
(pair_style, pair_coeff, mass) for a chosen set of atom types.

Commands:
  - render: print LAMMPS commands of a record
  - list:   find records by id, elements, pair style, units or status
  - build:  create a record from a YAML build description
  - files:  copy parameter files of a record to a working directory

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNPOT_*)
  3. Config file (~/.config/gnpot/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (store.dir -> GNPOT_STORE_DIR).

  Examples:
    GNPOT_STORE_DIR          Directory with records
    GNPOT_STORE_FORMAT       Format of saved records (json/yaml)
    GNPOT_RENDER_PATH_MODE   How file names are written (bare/by-id/prefixed/dir)
    GNPOT_RENDER_PREFIX      Directory for prefixed and dir path modes
    GNPOT_LOG_LEVEL          Log level (debug/info/warn/error)
    GNPOT_JOBS_NUMBER        Number of workers reading records`,
		PersistentPreRunE:  bootstrap,
		PersistentPostRunE: closeLog,
		RunE:               runRoot,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	// Remove the automatic "gnpot version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnpot")

	rootCmd.AddCommand(
		getRenderCmd(),
		getListCmd(),
		getBuildCmd(),
		getFilesCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "stderr",
	}
	if _, err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"store_dir", cfg.StoreDir(),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	var err error
	logDir := config.LogDir(cfg.HomeDir)
	logFile, err = iologger.Init(logDir, cfg.Log, true)
	return err
}

func closeLog(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNPOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Store configuration
	v.BindEnv("store.dir", "GNPOT_STORE_DIR")
	v.BindEnv("store.format", "GNPOT_STORE_FORMAT")

	// Render configuration
	v.BindEnv("render.path_mode", "GNPOT_RENDER_PATH_MODE")
	v.BindEnv("render.prefix", "GNPOT_RENDER_PREFIX")
	v.BindEnv("render.comments", "GNPOT_RENDER_COMMENTS")

	// Log configuration
	v.BindEnv("log.level", "GNPOT_LOG_LEVEL")
	v.BindEnv("log.format", "GNPOT_LOG_FORMAT")
	v.BindEnv("log.destination", "GNPOT_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNPOT_JOBS_NUMBER")

	v.AutomaticEnv()
}
