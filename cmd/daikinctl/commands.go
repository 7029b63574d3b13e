package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jattkaim/daikinhttp"
	"github.com/jattkaim/daikinhttp/internal/api"
	"github.com/jattkaim/daikinhttp/internal/publish"
)

const shutdownTimeout = 10 * time.Second

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show general appliance information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := a.client.GetGeneralInfo(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			printGeneralInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func newSensorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sensor",
		Short: "Show temperature and humidity readings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := a.client.GetSensorInfo(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			printSensorInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func newControlCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "control",
		Short: "Show the current control state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := a.client.GetControlInfo(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			printControlInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	var (
		power    string
		mode     string
		temp     float64
		humidity float64
		fanRate  string
		fanDir   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change control settings, keeping everything not given",
		Example: "  daikinctl set --mode cool --temp 24\n" +
			"  daikinctl set --power off",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s daikinhttp.ControlSettings
			flags := cmd.Flags()

			if flags.Changed("power") {
				switch power {
				case "on", "1", "true":
					s.Power = daikinhttp.Bool(true)
				case "off", "0", "false":
					s.Power = daikinhttp.Bool(false)
				default:
					return fmt.Errorf("invalid --power %q (want on or off)", power)
				}
			}
			if flags.Changed("mode") {
				m, err := daikinhttp.ParseMode(mode)
				if err != nil {
					return err
				}
				s.Mode = daikinhttp.Int(m)
			}
			if flags.Changed("temp") {
				s.TargetTemp = daikinhttp.Float(temp)
			}
			if flags.Changed("humidity") {
				s.TargetHumidity = daikinhttp.Float(humidity)
			}
			if flags.Changed("fan-rate") {
				s.FanRate = daikinhttp.String(daikinhttp.ParseFanRate(fanRate))
			}
			if flags.Changed("fan-dir") {
				s.FanDir = daikinhttp.String(daikinhttp.ParseFanDir(fanDir))
			}
			if s.IsEmpty() {
				return errors.New("nothing to set")
			}

			if err := a.client.SetControlInfo(cmd.Context(), s); err != nil {
				return err
			}
			info, err := a.client.GetControlInfo(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			printControlInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&power, "power", "", "on or off")
	f.StringVar(&mode, "mode", "", "auto, cool, hot, dry or fan")
	f.Float64Var(&temp, "temp", 0, "target temperature in °C")
	f.Float64Var(&humidity, "humidity", 0, "target humidity in %")
	f.StringVar(&fanRate, "fan-rate", "", "auto, silence or 1-5")
	f.StringVar(&fanDir, "fan-dir", "", "off, vertical, horizontal or 3d")
	return cmd
}

func newRebootCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reboot",
		Short: "Restart the appliance's network adapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Reboot(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reboot requested")
			return nil
		},
	}
}

func newPublishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Publish one status snapshot to MQTT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.client.Status(cmd.Context())
			if err != nil {
				return err
			}

			p, err := publish.Connect(a.cfg.MQTT)
			if err != nil {
				return err
			}
			defer p.Close()

			msgs, err := p.PublishStatus(status)
			if err != nil {
				return err
			}
			for _, m := range msgs {
				a.log.Infow("published", "topic", m.Topic, "bytes", len(m.Payload))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Published %d messages to %s\n", len(msgs), a.cfg.MQTT.Broker)
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve a JSON REST API for the appliance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler := api.NewHandler(a.client, a.log)
			srv := &api.Server{}

			errCh := make(chan error, 1)
			go func() {
				a.log.Infow("listening", "addr", a.cfg.HTTP.Listen)
				errCh <- srv.Run(a.cfg.HTTP.Listen, handler.InitRoutes())
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-quit:
			}

			a.log.Infow("shutting down server...")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTemp(t *float64, unit string) string {
	if t == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%s", *t, unit)
}

func printGeneralInfo(w io.Writer, info *daikinhttp.GeneralInfo) {
	fmt.Fprintf(w, "Name:     %s\n", info.Name)
	fmt.Fprintf(w, "MAC:      %s\n", info.FormattedMAC())
	fmt.Fprintf(w, "Type:     %s (%s)\n", info.Type, info.Region)
	fmt.Fprintf(w, "Firmware: %s\n", info.Version)
	fmt.Fprintf(w, "Power:    %t\n", info.Power)
}

func printSensorInfo(w io.Writer, info *daikinhttp.SensorInfo) {
	fmt.Fprintf(w, "Inside:   %s\n", formatTemp(info.InsideTemp, "°C"))
	fmt.Fprintf(w, "Outside:  %s\n", formatTemp(info.OutsideTemp, "°C"))
	fmt.Fprintf(w, "Humidity: %s\n", formatTemp(info.InsideHumidity, "%"))
}

func printControlInfo(w io.Writer, info *daikinhttp.ControlInfo) {
	fmt.Fprintf(w, "Power:    %t\n", info.Power)
	fmt.Fprintf(w, "Mode:     %s\n", daikinhttp.ModeName(info.Mode))
	fmt.Fprintf(w, "Target:   %s\n", formatTemp(info.TargetTemp, "°C"))
	fmt.Fprintf(w, "Fan rate: %s\n", daikinhttp.FanRateName(info.FanRate))
	fmt.Fprintf(w, "Fan dir:  %s\n", daikinhttp.FanDirName(info.FanDir))
}
