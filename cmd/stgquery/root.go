package main

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BarrensZeppelin/storage/internal/logging"
	"github.com/BarrensZeppelin/storage/regfile"
)

const (
	CfgConfigFile = "config"
	CfgRegFile    = "regfile"
	CfgLogLevel   = "log.level"
	CfgLogFormat  = "log.format"
)

var (
	logger = logging.GetLogger("cmd/stgquery")

	initLoggingOnce sync.Once
)

// app carries the configuration shared by all sub-commands.
type app struct {
	v  *viper.Viper
	rf *regfile.RegisterFile
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:          "stgquery",
		Short:        "query overlap and containment of machine storages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.String(CfgConfigFile, "", "config file")
	flags.String(CfgRegFile, "", "register file description (YAML)")
	flags.String(CfgLogLevel, "ERROR", "log level [DEBUG,INFO,WARN,ERROR]")
	flags.String(CfgLogFormat, "logfmt", "log format [logfmt,JSON]")
	rootCmd.PersistentFlags().AddFlagSet(flags)
	_ = a.v.BindPFlags(flags)

	rootCmd.AddCommand(
		newOverlapCmd(a),
		newMatrixCmd(a),
		newOrderCmd(a),
	)
	return rootCmd
}

func (a *app) init() error {
	if cfg := a.v.GetString(CfgConfigFile); cfg != "" {
		a.v.SetConfigFile(cfg)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	var (
		lvl    logging.Level
		format logging.Format
		err    error
	)
	if err = lvl.Set(a.v.GetString(CfgLogLevel)); err != nil {
		return err
	}
	if err = format.Set(a.v.GetString(CfgLogFormat)); err != nil {
		return err
	}
	initLoggingOnce.Do(func() {
		err = logging.Initialize(os.Stderr, format, lvl)
	})
	if err != nil {
		return err
	}

	path := a.v.GetString(CfgRegFile)
	if path == "" {
		return errors.New("a register file must be given with --" + CfgRegFile)
	}
	if a.rf, err = regfile.LoadFile(path); err != nil {
		logger.Error("failed to load register file",
			"err", err,
			"path", path,
		)
		return err
	}

	logger.Info("loaded register file",
		"name", a.rf.Name(),
		"path", path,
	)
	return nil
}
