package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jattkaim/daikinhttp"
	"github.com/jattkaim/daikinhttp/internal/config"
	"github.com/jattkaim/daikinhttp/internal/logging"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v          *viper.Viper
	configPath string
	jsonOutput bool

	cfg    *config.Config
	log    *zap.SugaredLogger
	client *daikinhttp.Client
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "daikinctl",
		Short:         "Control a Daikin air conditioner over its local HTTP interface",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./daikinctl.yaml)")
	flags.String("host", "", "appliance address, optionally with :port")
	flags.Duration("timeout", 0, "HTTP timeout per request")
	flags.Bool("https", false, "use https (BRP072C adapters)")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.BoolVar(&a.jsonOutput, "json", false, "print JSON instead of text")

	_ = a.v.BindPFlag("host", flags.Lookup("host"))
	_ = a.v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("https", flags.Lookup("https"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		newInfoCmd(a),
		newSensorCmd(a),
		newControlCmd(a),
		newSetCmd(a),
		newRebootCmd(a),
		newPublishCmd(a),
		newServeCmd(a),
	)
	return root
}

// setup loads config, builds the logger and the appliance client.
func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Log.Level)

	opts := append(cfg.ClientOptions(), daikinhttp.WithLogger(logging.ForClient(a.log)))
	client, err := daikinhttp.NewClient(cfg.Host, opts...)
	if err != nil {
		return err
	}
	a.client = client
	a.log.Debugw("client ready", "base_url", client.BaseURL())
	return nil
}
