package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/taskbridge-api/client"
	"github.com/bitmark-inc/taskbridge-api/location"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

// errReported marks a failure the flow already showed to the user
type errReported struct {
	err error
}

func (e errReported) Error() string { return e.err.Error() }
func (e errReported) Unwrap() error { return e.err }

var signupCmd = &cobra.Command{
	Use:   "signup <email> <password>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := client.NewLoginFlow(session, ui).SignUp(cmd.Context(), args[0], args[1])
		if err != nil {
			return errReported{err}
		}
		fmt.Fprintf(ui.out, "Signed up as %s\n", id.Email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Sign in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := client.NewLoginFlow(session, ui).SignIn(cmd.Context(), args[0], args[1])
		if err != nil {
			return errReported{err}
		}
		fmt.Fprintf(ui.out, "Signed in as %s\n", id.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := client.NewProfileFlow(api, session, ui, ui)
		if err := p.Logout(); err != nil {
			return errReported{err}
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		id := session.CurrentIdentity()
		if id == nil {
			fmt.Fprintln(ui.out, "Not signed in")
			return nil
		}
		fmt.Fprintln(ui.out, id.Email)
		return nil
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "List every favor",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ui.showFeed(cmd.Context()); err != nil {
			return errReported{err}
		}
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post <title> <description...>",
	Short: "Ask for a favor",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := locator(cmd)
		if err != nil {
			return err
		}

		p := client.NewPostFavorFlow(api, provider, ui, ui, viper.GetBool("anonymous"))
		p.Enter(cmd.Context())
		p.SetDraft(args[0], strings.Join(args[1:], " "))

		if _, err := p.Submit(cmd.Context(), session.CurrentIdentity()); err != nil {
			return errReported{err}
		}
		return nil
	},
}

var acceptCmd = &cobra.Command{
	Use:   "accept <favor id>",
	Short: "Accept an open favor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd.Context(), args[0], (*client.FeedFlow).Accept)
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <favor id>",
	Short: "Mark a favor you posted as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd.Context(), args[0], (*client.FeedFlow).Complete)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your favors and trust badge",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := client.NewProfileFlow(api, session, ui, ui)
		profile, err := p.Mount(cmd.Context(), session.CurrentIdentity())
		if err != nil {
			return errReported{err}
		}
		ui.renderProfile(profile)
		return nil
	},
}

func init() {
	postCmd.Flags().String("at", "", "location of the favor as `latitude;longitude`")
	postCmd.Flags().Bool("locate", false, "look up the current location")
	postCmd.Flags().String("geo-key", "", "google maps api key used by --locate")
	_ = viper.BindPFlag("geo.key", postCmd.Flags().Lookup("geo-key"))
}

func locator(cmd *cobra.Command) (location.Provider, error) {
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		loc, err := location.ParseGeoPosition(at)
		if err != nil {
			return nil, err
		}
		return location.NewStaticProvider(loc), nil
	}

	if locate, _ := cmd.Flags().GetBool("locate"); locate {
		return location.NewGeolocationProvider(viper.GetString("geo.key"), true), nil
	}
	return nil, nil
}

type feedAction func(*client.FeedFlow, context.Context, *schema.Identity, string) error

func mutate(ctx context.Context, id string, action feedAction) error {
	feed := client.NewFeedFlow(api, ui)
	viewer := session.CurrentIdentity()

	if err := feed.Refresh(ctx, viewer); err != nil {
		return errReported{err}
	}
	if err := action(feed, ctx, viewer, id); err != nil {
		return errReported{err}
	}

	ui.renderFeed(feed.Items(), viewer)
	return nil
}
