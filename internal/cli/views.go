package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"beervault/internal/models"
	"beervault/internal/state"
)

// Feed prints the shared feed. mode is one of recent (default), rating,
// popular.
func (a *App) Feed(_ context.Context, mode string) error {
	if mode == "" {
		mode = string(state.SortRecent)
	}
	entries := a.coord.State().Feed(state.SortMode(mode))
	if len(entries) == 0 {
		printlnFn("The feed is empty. Be the first to add an entry!")
		return nil
	}
	for i := range entries {
		printEntry(&entries[i], true)
	}
	return nil
}

// Journal prints the session account's own entries and their stat block.
func (a *App) Journal(_ context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	st := a.coord.State().Journal(sess.ID)
	printlnFn(fmt.Sprintf("Entries: %d | Breweries: %d | Avg rating: %.1f | Favorite: %s",
		st.TotalEntries, st.UniqueProducers, st.AverageRating, st.FavoriteCategory))

	own := a.coord.State().EntriesByOwner(sess.ID)
	if len(own) == 0 {
		printlnFn("No entries in your journal yet. Add your first beer!")
		return nil
	}
	for i := range own {
		printEntry(&own[i], false)
	}
	return nil
}

// Discover searches names, breweries and styles. Without a query it prompts
// for one.
func (a *App) Discover(_ context.Context, query string) error {
	if query == "" {
		var err error
		query, err = getSimpleText(a.reader, "Search beers, breweries, styles", os.Stdout)
		if err != nil {
			return err
		}
	}

	results := a.coord.State().Search(query)
	if len(results) == 0 {
		printlnFn("Nothing found for", query)
		return nil
	}
	for i := range results {
		printEntry(&results[i], false)
	}
	return nil
}

// Map prints the session account's visited locations grouped by label.
func (a *App) Map(_ context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	groups := a.coord.State().Locations(sess.ID)
	if len(groups) == 0 {
		printlnFn("No locations yet. Add an entry with a location!")
		return nil
	}
	for _, g := range groups {
		where := g.Label
		if g.Coords != nil {
			where = fmt.Sprintf("%s (%.4f, %.4f)", g.Label, g.Coords.Lat, g.Coords.Lng)
		}
		printlnFn(fmt.Sprintf("📍 %s - %d entr%s", where, len(g.Entries), plural(len(g.Entries), "y", "ies")))
		for _, e := range g.Entries {
			printlnFn(fmt.Sprintf("     %s %s (%.1f★)", e.Emoji, e.Name, e.Rating))
		}
	}
	return nil
}

// Leaderboard prints accounts by weekly entry count, highest first.
func (a *App) Leaderboard(_ context.Context) error {
	board := a.coord.State().Leaderboard()
	for i, acct := range board {
		marker := "  "
		if sess := a.coord.State().Session(); sess != nil && sess.ID == acct.ID {
			marker = "->"
		}
		printlnFn(fmt.Sprintf("%s %2d. %s %-22s %d this week", marker, i+1, acct.AvatarToken, acct.Username, acct.WeeklyEntryCount))
	}
	return nil
}

// Stats prints the session account's style breakdown and achievements.
func (a *App) Stats(_ context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}
	st := a.coord.State()

	breakdown := st.CategoryBreakdown(sess.ID)
	if len(breakdown) == 0 {
		printlnFn("Add entries to see your style preferences!")
	} else {
		printlnFn("Favorite styles:")
		if len(breakdown) > 5 {
			breakdown = breakdown[:5]
		}
		for _, share := range breakdown {
			printlnFn(fmt.Sprintf("  %-12s %3d%%  %s", share.Category, share.Percent, strings.Repeat("#", share.Percent/5)))
		}
	}

	printlnFn("Achievements:")
	for _, ach := range st.Achievements(sess.ID) {
		mark := " "
		if ach.Unlocked {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("  [%s] %s - %s", mark, ach.Title, ach.Description))
	}
	return nil
}

// printEntry renders one entry. Social counters and comments are shown only
// in the feed.
func printEntry(e *models.Entry, social bool) {
	media := e.Emoji
	if e.Image != "" {
		media = "🖼"
	}
	printlnFn(fmt.Sprintf("%s %s - %s [%s] %.1f★  (id %s)", media, e.Name, e.Producer, e.Category, e.Rating, e.ID))
	printlnFn(fmt.Sprintf("   by %s on %s | ABV %.1f%% | IBU %d | €%.2f", e.OwnerName, e.CreatedDate, e.Strength, e.Bitterness, e.Price))
	if e.LocationLabel != "" {
		printlnFn("   at " + e.LocationLabel)
	}
	if len(e.Tags) > 0 {
		printlnFn("   " + strings.Join(e.Tags, ", "))
	}
	if e.Narrative != "" {
		printlnFn("   " + e.Narrative)
	}
	if social {
		printlnFn(fmt.Sprintf("   ♥ %d | %d comment(s)", e.LikeCount, len(e.Comments)))
		for _, cm := range e.Comments {
			printlnFn(fmt.Sprintf("     %s: %s (%s)", cm.AuthorName, cm.Text, cm.Date))
		}
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
