package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/taskbridge-api/client"
	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/location"
	"github.com/bitmark-inc/taskbridge-api/schema"
	"github.com/bitmark-inc/taskbridge-api/utils"
)

// terminal is the notifier and navigator of the cli
type terminal struct {
	out    io.Writer
	errOut io.Writer
	lang   string
}

func newTerminal(out, errOut io.Writer, lang string) *terminal {
	return &terminal{
		out:    out,
		errOut: errOut,
		lang:   lang,
	}
}

func (t *terminal) Error(title string, err error) {
	fmt.Fprintf(t.errOut, "%s: %s\n", title, client.MessageFor(err, t.lang))
}

func (t *terminal) Info(title string, message *i18n.Message) {
	fmt.Fprintf(t.out, "%s: %s\n", title, utils.Localize(t.lang, message))
}

func (t *terminal) Navigate(route string) {
	switch route {
	case client.RouteFeed:
		if err := t.showFeed(context.Background()); err != nil {
			return
		}
	case client.RouteLogin:
		fmt.Fprintln(t.out, "Signed out. Run `taskbridge login <email> <password>` to sign in.")
	case client.RouteProfile:
		fmt.Fprintln(t.out, "Run `taskbridge profile` to see your profile.")
	case client.RoutePostFavor:
		fmt.Fprintln(t.out, "Run `taskbridge post <title> <description>` to ask for a favor.")
	}
}

func (t *terminal) showFeed(ctx context.Context) error {
	feed := client.NewFeedFlow(api, t)
	viewer := session.CurrentIdentity()
	if err := feed.Refresh(ctx, viewer); err != nil {
		return err
	}
	t.renderFeed(feed.Items(), viewer)
	return nil
}

func (t *terminal) renderFeed(items []client.FeedItem, viewer *schema.Identity) {
	if len(items) == 0 {
		fmt.Fprintln(t.out, "No favors yet.")
		return
	}

	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPOSTED BY\tACCEPTED BY\tLOCATION\tACTIONS")
	for _, i := range items {
		f := i.Favor
		loc := "-"
		switch {
		case f.Location == nil:
		case f.Location.Neighborhood != "":
			loc = f.Location.Neighborhood
		default:
			loc = location.FormatGeoPosition(*f.Location)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID.Hex(), f.Title, f.Status, f.PostedBy, dash(f.AcceptedBy), loc, actions(i.Actions))
	}
	_ = w.Flush()

	if viewer == nil {
		fmt.Fprintln(t.out, "Sign in to accept or complete favors.")
	}
}

func (t *terminal) renderProfile(p *client.Profile) {
	if p == nil {
		fmt.Fprintln(t.out, "You are not signed in. Run `taskbridge login <email> <password>` first.")
		return
	}

	fmt.Fprintf(t.out, "%s\nTrust badge: %s (%d favors)\n", p.Identity.Email, p.Tier, len(p.Posted)+len(p.Accepted))
	t.renderList("Posted", p.Posted)
	t.renderList("Accepted", p.Accepted)
}

func (t *terminal) renderList(title string, favors []schema.Favor) {
	fmt.Fprintf(t.out, "\n%s (%d)\n", title, len(favors))
	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	for _, f := range favors {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", f.ID.Hex(), f.Title, f.Status)
	}
	_ = w.Flush()
}

func actions(kinds []favor.ActionKind) string {
	if len(kinds) == 0 {
		return "-"
	}
	s := make([]string, 0, len(kinds))
	for _, k := range kinds {
		s = append(s, string(k))
	}
	return strings.Join(s, ",")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
