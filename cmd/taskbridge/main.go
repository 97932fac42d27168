package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/taskbridge-api/client"
	"github.com/bitmark-inc/taskbridge-api/utils"
)

var (
	api     *client.Client
	session *client.Session
	ui      *terminal
)

var rootCmd = &cobra.Command{
	Use:           "taskbridge",
	Short:         "Ask your neighbors for a favor, or help one out",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	flags := rootCmd.PersistentFlags()
	flags.String("server", "http://localhost:8080", "taskbridge api address")
	flags.String("session", filepath.Join(home, ".taskbridge", "session.json"), "file keeping the signed in session")
	flags.String("lang", "en", "language of messages")
	flags.String("i18n", "", "directory of translation files")
	flags.Bool("anonymous", false, "allow posting favors without signing in")
	flags.String("log-level", "warn", "log level")

	for _, name := range []string{"server", "session", "lang", "i18n", "anonymous"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))

	viper.SetEnvPrefix("taskbridge")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd, feedCmd, postCmd, acceptCmd, completeCmd, profileCmd)
}

func setup() error {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if dir := viper.GetString("i18n"); dir != "" {
		if err := utils.InitI18NBundle(dir); err != nil {
			return err
		}
	}

	api = client.New(viper.GetString("server"))
	session, err = client.NewSession(api, client.NewFileTokenStore(viper.GetString("session")))
	if err != nil {
		return err
	}
	api.UseTokenSource(session)

	ui = newTerminal(os.Stdout, os.Stderr, viper.GetString("lang"))
	return nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err == nil {
		return
	}

	var reported errReported
	switch {
	case errors.As(err, &reported):
	case ui != nil:
		fmt.Fprintln(os.Stderr, client.MessageFor(err, ui.lang))
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
