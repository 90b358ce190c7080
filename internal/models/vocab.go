package models

// Categories is the fixed style vocabulary offered by the entry form.
// Free text is still accepted; the list only feeds the picker.
var Categories = []string{
	"IPA", "Pale Ale", "Lager", "Dark Lager", "Stout", "Porter",
	"Wheat Beer", "Sour", "Belgian", "Pilsner", "Amber",
}

// FlavorOptions is the fixed flavor tag vocabulary.
var FlavorOptions = []string{
	"hoppy", "malty", "bitter", "sweet", "citrus", "fruity",
	"caramel", "chocolate", "coffee", "smooth", "crisp", "refreshing",
}

// LocationSuggestion pairs a display label with coordinates. Coordinates are
// attached to an entry only when the user picks a suggestion; free-text
// locations stay without coords.
type LocationSuggestion struct {
	Name   string
	Coords Coords
}

// LocationSuggestions is the fixed suggestion list used by the entry form.
var LocationSuggestions = []LocationSuggestion{
	{Name: "Labietis, Riga", Coords: Coords{Lat: 56.9537, Lng: 24.1134}},
	{Name: "Valmiermuiža Brewery, Valmiera", Coords: Coords{Lat: 57.5384, Lng: 25.4263}},
	{Name: "Folkklubs Ala Pagrabs, Riga", Coords: Coords{Lat: 56.9489, Lng: 24.1064}},
	{Name: "Alus Celle, Riga", Coords: Coords{Lat: 56.9512, Lng: 24.1142}},
	{Name: "Taka Craft Beer Bar, Riga", Coords: Coords{Lat: 56.9501, Lng: 24.1089}},
	{Name: "Ezītis Miglā, Riga", Coords: Coords{Lat: 56.9518, Lng: 24.1156}},
}
