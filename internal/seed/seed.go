// Package seed provides the fixed demo dataset used to initialize an empty
// backend, so a fresh install has a feed, a leaderboard and a map to look at.
package seed

import "beervault/internal/models"

// Accounts returns the demo account collection. The whole dataset is meant to
// be replaced by real registrations.
func Accounts() []models.Account {
	return []models.Account{
		{ID: "1", Username: "emil_beer_explorer", Email: "emil@example.com", Password: "demo123", AvatarToken: "🍺", JoinDate: "2024-01-15", WeeklyEntryCount: 12},
		{ID: "2", Username: "beer_enthusiast_lv", Email: "enthusiast@example.com", Password: "demo123", AvatarToken: "🍻", JoinDate: "2024-02-20", WeeklyEntryCount: 8},
		{ID: "3", Username: "craft_beer_fan", Email: "craft@example.com", Password: "demo123", AvatarToken: "🥃", JoinDate: "2024-03-10", WeeklyEntryCount: 15},
		{ID: "4", Username: "hops_lover", Email: "hops@example.com", Password: "demo123", AvatarToken: "🍺", JoinDate: "2024-04-05", WeeklyEntryCount: 6},
		{ID: "5", Username: "stout_master", Email: "stout@example.com", Password: "demo123", AvatarToken: "🍻", JoinDate: "2024-05-12", WeeklyEntryCount: 10},
	}
}

// Entries returns the demo entry collection, most recent first.
func Entries() []models.Entry {
	return []models.Entry{
		{
			ID: "1", OwnerID: "1", OwnerName: "emil_beer_explorer",
			Name: "Valmiermuižas Tumšais", Producer: "Valmiermuiža", Category: "Dark Lager",
			Rating: 4.5, Strength: 5.8, Bitterness: 28, Price: 2.50,
			LocationLabel:  "Valmiera, Latvia",
			LocationCoords: &models.Coords{Lat: 57.5384, Lng: 25.4263},
			Tags:           []string{"malty", "caramel", "smooth"},
			Narrative:      "Rich caramel notes with a smooth finish. Perfect for autumn evenings.",
			Emoji:          "🍺",
			CreatedDate:    "2024-11-28",
			LikeCount:      2, LikedBy: []string{"2", "3"},
			Comments: []models.Comment{
				{ID: "c1", AuthorID: "2", AuthorName: "beer_enthusiast_lv", Text: "One of my favorites too!", Date: "2024-11-28"},
				{ID: "c2", AuthorID: "3", AuthorName: "craft_beer_fan", Text: "Need to try this one!", Date: "2024-11-28"},
			},
		},
		{
			ID: "2", OwnerID: "2", OwnerName: "beer_enthusiast_lv",
			Name: "Užavas Pale Ale", Producer: "Užavas Alus", Category: "Pale Ale",
			Rating: 4.0, Strength: 5.2, Bitterness: 35, Price: 2.80,
			LocationLabel:  "Riga, Latvia",
			LocationCoords: &models.Coords{Lat: 56.9496, Lng: 24.1052},
			Tags:           []string{"hoppy", "citrus", "refreshing"},
			Narrative:      "Great hoppy character with citrus notes. Very refreshing!",
			Emoji:          "🍻",
			CreatedDate:    "2024-11-27",
			LikeCount:      1, LikedBy: []string{"1"},
			Comments: []models.Comment{
				{ID: "c1", AuthorID: "1", AuthorName: "emil_beer_explorer", Text: "Perfect summer beer!", Date: "2024-11-27"},
			},
		},
		{
			ID: "3", OwnerID: "3", OwnerName: "craft_beer_fan",
			Name: "Labietis Kviešu", Producer: "Labietis", Category: "Wheat Beer",
			Rating: 4.2, Strength: 5.0, Bitterness: 15, Price: 3.50,
			LocationLabel:  "Riga, Labietis Bar",
			LocationCoords: &models.Coords{Lat: 56.9537, Lng: 24.1134},
			Tags:           []string{"fruity", "smooth", "refreshing"},
			Narrative:      "Classic wheat beer with banana and clove notes.",
			Emoji:          "🍺",
			CreatedDate:    "2024-11-26",
			LikeCount:      3, LikedBy: []string{"1", "2", "5"},
			Comments: []models.Comment{},
		},
	}
}
