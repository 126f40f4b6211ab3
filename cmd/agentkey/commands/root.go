package commands

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"agentkey/internal/app"
)

const (
	keyFileKey       = "key-file"
	machineSecretKey = "machine-secret"
	machineIDKey     = "machine-id-file"
	logLevelKey      = "log-level"
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		wire    *app.Wire
	)
	v := viper.New()
	log := logrus.New()

	root := &cobra.Command{
		Use:           "agentkey",
		Short:         "Manage the host's machine-protected RSA key pair",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}

			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			level, err := logrus.ParseLevel(v.GetString(logLevelKey))
			if err != nil {
				return err
			}
			log.SetLevel(level)

			cfg, err := resolveConfig(v)
			if err != nil {
				return err
			}
			cfg.Logger = log

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String(keyFileKey, "", "encrypted key file (default ~/.agentkey/.credentials_rsaparams)")
	flags.String(machineSecretKey, "", "machine-wide secret file, non-Windows only (default "+app.DefaultMachineSecretFile()+")")
	flags.String(machineIDKey, "", "machine id file override, non-Windows only")
	flags.String(logLevelKey, "warning", "log level (debug, info, warning, error)")
	_ = v.BindPFlags(flags)

	v.SetEnvPrefix("AGENTKEY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	getWire := func() *app.Wire { return wire }
	root.AddCommand(
		initCmd(getWire),
		showCmd(getWire),
		publicKeyCmd(getWire),
		deleteCmd(getWire),
	)
	return root
}

// defaultMachineSecret is swapped in tests to avoid writing to system paths.
var defaultMachineSecret = app.DefaultMachineSecretFile

// resolveConfig fills in default paths for anything left unset.
func resolveConfig(v *viper.Viper) (app.Config, error) {
	cfg := app.Config{
		KeyFile:           v.GetString(keyFileKey),
		MachineSecretFile: v.GetString(machineSecretKey),
		MachineIDFile:     v.GetString(machineIDKey),
	}
	if cfg.MachineSecretFile == "" {
		cfg.MachineSecretFile = defaultMachineSecret()
	}
	if cfg.KeyFile != "" {
		return cfg, nil
	}
	home, err := app.DefaultHome()
	if err != nil {
		return app.Config{}, err
	}
	cfg.KeyFile = app.DefaultKeyFile(home)
	return cfg, nil
}
