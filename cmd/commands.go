package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"typewise_alert/internal/config"
	"typewise_alert/internal/handlers"
	"typewise_alert/internal/logger"
	"typewise_alert/internal/models"
	"typewise_alert/internal/server"
	"typewise_alert/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Defaults of the check command reproduce the reference reading.
const (
	defaultTarget  = "TO_EMAIL"
	defaultCooling = "HI_ACTIVE_COOLING"
	defaultBrand   = "SampleBrand"
	defaultTempC   = 50.0
)

func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "typewise-alert",
		Short: "Battery temperature breach classifier and alert dispatcher",
		Long: `Classifies a battery temperature reading against the limits of its
cooling type and routes the verdict to the controller or email sink.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yml)")
	root.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error")
	_ = v.BindPFlag(config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))

	load := func() (config.Config, error) {
		return config.Load(v, cfgFile)
	}

	root.AddCommand(
		checkCmd(load),
		limitsCmd(),
		serveCmd(v, load),
		tokenCmd(load),
		hashPasswordCmd(),
	)
	return root
}

// checkCmd classifies one reading and emits the notification on stdout.
func checkCmd(load func() (config.Config, error)) *cobra.Command {
	var (
		target  string
		cooling string
		brand   string
		tempC   float64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Classify a reading and dispatch the alert",
		Example: `  typewise-alert check
  typewise-alert check --target controller --cooling passive --temp 36`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			coolingType, err := models.ParseCoolingType(cooling)
			if err != nil {
				return &exitError{err: service.ErrInvalidCoolingType, code: 1}
			}
			// an unparseable target is left for the dispatcher to reject
			alertTarget, err := models.ParseAlertTarget(target)
			if err != nil {
				alertTarget = models.AlertTarget(-1)
			}

			log := logger.New(cfg.LogLevel, cmd.ErrOrStderr())
			defer func() { _ = log.Sync() }()

			svc := service.NewService(service.Deps{
				Out:  cmd.OutOrStdout(),
				Diag: cmd.ErrOrStderr(),
				Log:  log,
			})
			battery := models.NewBatteryCharacter(coolingType, brand)
			if _, err := svc.CheckAndAlert(cmd.Context(), alertTarget, battery, tempC); err != nil {
				if service.IsFatal(err) {
					return &exitError{err: err, code: 1}
				}
				// already reported on the diagnostics stream
				return nil
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", defaultTarget, "alert target: TO_CONTROLLER|TO_EMAIL")
	cmd.Flags().StringVarP(&cooling, "cooling", "c", defaultCooling, "cooling type: PASSIVE_COOLING|HI_ACTIVE_COOLING|MED_ACTIVE_COOLING")
	cmd.Flags().StringVarP(&brand, "brand", "b", defaultBrand, "battery brand label")
	cmd.Flags().Float64Var(&tempC, "temp", defaultTempC, "temperature in °C")
	return cmd
}

func limitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Print the temperature limit table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range service.NewLimitService().Table() {
				if _, err := fmt.Fprintf(out, "%-20s %6.1f %6.1f\n", e.CoolingType, e.Limits.LowerLimit, e.Limits.UpperLimit); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// serveCmd starts the HTTP API and blocks until a termination signal.
func serveCmd(v *viper.Viper, load func() (config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			log := logger.Get(cfg.LogLevel)
			defer func() { _ = log.Sync() }()

			services := newServices(cfg, os.Stdout, os.Stderr, log)
			if !services.Authorization.Enabled() {
				log.Warnw("auth.signing_key not set; /api/v1 is unauthenticated")
			}

			srv := &server.Server{}
			runHTTPServer(srv, cfg.HTTPPort, handlers.NewHandler(services, log), log)
			return waitForShutdown(srv, log)
		},
	}
	cmd.Flags().StringP("port", "p", "", "HTTP port (overrides http.port)")
	_ = v.BindPFlag(config.KeyHTTPPort, cmd.Flags().Lookup("port"))
	return cmd
}

func tokenCmd(load func() (config.Config, error)) *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			auth := service.NewAuthService(service.AuthConfig{
				SigningKey: cfg.Auth.SigningKey,
				TokenTTL:   cfg.Auth.TokenTTL,
			})
			token, err := auth.GenerateToken(subject)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")
	return cmd
}

// hashPasswordCmd reads a password from stdin and prints its bcrypt hash.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for auth.password_hash (password read from stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			hash, err := service.HashPassword(password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
