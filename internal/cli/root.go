package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/oliverbestmann/bykegraph/internal/config"
	"github.com/oliverbestmann/bykegraph/internal/observability"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var ErrInvalidProfile = errors.New("invalid profile mode")

// app holds the state shared by all commands of one invocation.
type app struct {
	v   *viper.Viper
	cfg *config.Config

	configFile  string
	profileMode string
	profilePath string
	profiler    interface{ Stop() }
}

// NewRootCmd creates the graphhit command with all of its sub commands.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	cmd := &cobra.Command{
		Use:           "graphhit",
		Short:         "graphhit hit tests pointers against 2D scene graphs.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bindQueryFlags(cmd); err != nil {
				return err
			}

			if err := a.initializeConfig(); err != nil {
				return err
			}

			observability.InitializeLogger(a.cfg.Logger)

			if err := a.startProfile(); err != nil {
				return err
			}

			observability.GetLogger().Debug("Starting graphhit",
				zap.String("version", Version),
				zap.String("command", cmd.Name()))

			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.profiler != nil {
				a.profiler.Stop()
			}

			observability.Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default is ./graphhit.yaml)")
	cmd.PersistentFlags().StringVar(&a.profileMode, "profile", "", "write a cpu or mem profile")
	cmd.PersistentFlags().StringVar(&a.profilePath, "profile-path", ".", "directory to write the profile to")

	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	cmd.AddCommand(newQueryCmd(a))
	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// bindQueryFlags binds the flags of the command being executed to their
// query.* keys. query and inspect share flag names, so only the running
// command may hold the binding.
func (a *app) bindQueryFlags(cmd *cobra.Command) error {
	for _, name := range []string{"scene", "workers", "format"} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}

		if err := a.v.BindPFlag("query."+name, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	return nil
}

// initializeConfig reads the config file, the environment and the bound
// flags into a.cfg. A missing default config file is not an error.
func (a *app) initializeConfig() error {
	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("graphhit")
		a.v.SetConfigType("yaml")
	}

	config.BindEnv(a.v)

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	cfg, err := config.NewConfigFromViper(a.v)
	if err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

func (a *app) startProfile() error {
	var mode func(*profile.Profile)

	switch a.profileMode {
	case "":
		return nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return fmt.Errorf("%w %q, expected cpu or mem", ErrInvalidProfile, a.profileMode)
	}

	a.profiler = profile.Start(mode,
		profile.ProfilePath(a.profilePath),
		profile.NoShutdownHook,
		profile.Quiet)

	return nil
}

// Execute runs the root command and exits the process on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
