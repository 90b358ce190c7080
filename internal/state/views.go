package state

import (
	"sort"
	"strings"

	"beervault/internal/models"
)

// SortMode orders the feed.
type SortMode string

const (
	SortRecent  SortMode = "recent"  // creation date, newest first
	SortRating  SortMode = "rating"  // rating, highest first
	SortPopular SortMode = "popular" // like count, highest first
)

// Feed returns the entry snapshot ordered by the given mode. Sorting is
// stable, so entries that compare equal keep their most-recent-first
// insertion order.
func (s *State) Feed(mode SortMode) []models.Entry {
	feed := s.Entries()
	switch mode {
	case SortRating:
		sort.SliceStable(feed, func(i, j int) bool { return feed[i].Rating > feed[j].Rating })
	case SortPopular:
		sort.SliceStable(feed, func(i, j int) bool { return feed[i].LikeCount > feed[j].LikeCount })
	default:
		// ISO dates compare correctly as strings.
		sort.SliceStable(feed, func(i, j int) bool { return feed[i].CreatedDate > feed[j].CreatedDate })
	}
	return feed
}

// Search returns entries whose name, producer or category contains the query,
// case-insensitively. An empty query matches everything.
func (s *State) Search(query string) []models.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Entries()
	}

	var out []models.Entry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Producer), q) ||
			strings.Contains(strings.ToLower(e.Category), q) {
			out = append(out, e)
		}
	}
	return out
}

// Leaderboard returns the accounts ordered by weekly entry count, highest
// first. Ties keep registration order.
func (s *State) Leaderboard() []models.Account {
	board := s.Accounts()
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].WeeklyEntryCount > board[j].WeeklyEntryCount
	})
	return board
}

// JournalStats summarizes one account's journal.
type JournalStats struct {
	TotalEntries     int
	UniqueProducers  int
	AverageRating    float64
	FavoriteCategory string
}

// Journal computes the stat block shown at the top of the journal view.
// FavoriteCategory is the modal category, "N/A" for an empty journal.
func (s *State) Journal(ownerID string) JournalStats {
	own := s.EntriesByOwner(ownerID)

	stats := JournalStats{TotalEntries: len(own), FavoriteCategory: "N/A"}
	if len(own) == 0 {
		return stats
	}

	producers := map[string]struct{}{}
	var ratingSum float64
	for _, e := range own {
		producers[e.Producer] = struct{}{}
		ratingSum += e.Rating
	}
	stats.UniqueProducers = len(producers)
	stats.AverageRating = ratingSum / float64(len(own))

	breakdown := s.CategoryBreakdown(ownerID)
	if len(breakdown) > 0 {
		stats.FavoriteCategory = breakdown[0].Category
	}
	return stats
}

// CategoryShare is one row of the analytics breakdown.
type CategoryShare struct {
	Category string
	Count    int
	Percent  int
}

// CategoryBreakdown groups the owner's entries by category, ordered by count
// descending, with each share as a rounded percentage of the owner's total.
func (s *State) CategoryBreakdown(ownerID string) []CategoryShare {
	own := s.EntriesByOwner(ownerID)
	if len(own) == 0 {
		return nil
	}

	counts := map[string]int{}
	var order []string
	for _, e := range own {
		if counts[e.Category] == 0 {
			order = append(order, e.Category)
		}
		counts[e.Category]++
	}

	out := make([]CategoryShare, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryShare{
			Category: c,
			Count:    counts[c],
			Percent:  int(float64(counts[c])/float64(len(own))*100 + 0.5),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Achievement is a named milestone over one account's journal.
type Achievement struct {
	Title       string
	Description string
	Unlocked    bool
}

// Achievements evaluates the fixed milestone set for one account.
func (s *State) Achievements(ownerID string) []Achievement {
	own := s.EntriesByOwner(ownerID)
	categories := map[string]struct{}{}
	for _, e := range own {
		categories[e.Category] = struct{}{}
	}

	return []Achievement{
		{Title: "First Sip", Description: "Add your first entry", Unlocked: len(own) >= 1},
		{Title: "Critic", Description: "Rate 10 entries", Unlocked: len(own) >= 10},
		{Title: "Style Master", Description: "Try 5 different styles", Unlocked: len(categories) >= 5},
		{Title: "Beer Explorer", Description: "Try 50+ beers", Unlocked: len(own) >= 50},
	}
}

// LocationGroup is one visited place with the entries recorded there.
type LocationGroup struct {
	Label   string
	Coords  *models.Coords
	Entries []models.Entry
}

// Locations groups the owner's entries by location label, in first-seen
// order. A group's coords come from the first entry that has any.
func (s *State) Locations(ownerID string) []LocationGroup {
	var groups []LocationGroup
	index := map[string]int{}

	for _, e := range s.EntriesByOwner(ownerID) {
		if e.LocationLabel == "" {
			continue
		}
		i, ok := index[e.LocationLabel]
		if !ok {
			i = len(groups)
			index[e.LocationLabel] = i
			groups = append(groups, LocationGroup{Label: e.LocationLabel})
		}
		if groups[i].Coords == nil && e.LocationCoords != nil {
			groups[i].Coords = e.LocationCoords
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// SuggestLocations filters the fixed suggestion list by case-insensitive
// substring. Queries shorter than 3 characters yield nothing.
func SuggestLocations(query string) []models.LocationSuggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 3 {
		return nil
	}

	var out []models.LocationSuggestion
	for _, s := range models.LocationSuggestions {
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}
