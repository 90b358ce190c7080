// Package models defines the typed records held in the two shared
// collections: tasting entries and accounts. All fields are explicit;
// defaults are applied at construction time, not checked at call sites.
package models

import (
	"strings"
	"time"

	"beervault/internal/common"

	"github.com/google/uuid"
)

// DateFormat is the ISO date layout stamped on entries, comments and accounts.
const DateFormat = "2006-01-02"

// Today returns the current UTC date in DateFormat.
func Today() string {
	return time.Now().UTC().Format(DateFormat)
}

// DefaultEmoji is the placeholder media token used when no image is attached.
const DefaultEmoji = "🍺"

// Coords is a latitude/longitude pair. It is only ever set when the location
// was picked from a suggestion, never parsed from free text.
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Comment is one feed comment. Comments are append-only; there is no edit or
// delete operation.
type Comment struct {
	ID         string `json:"id"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Text       string `json:"text"`
	Date       string `json:"date"`
}

// Entry is a single tasting record.
type Entry struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	OwnerName string `json:"ownerName"`

	Name     string `json:"name"`
	Producer string `json:"producer"`
	Category string `json:"category"`

	// Rating is in (0, 5]; a zero rating never passes validation.
	Rating float64 `json:"rating"`

	// Strength is ABV percent with one decimal, Bitterness is IBU,
	// Price is in whole currency units with one decimal. All default 0.
	Strength   float64 `json:"strength"`
	Bitterness int     `json:"bitterness"`
	Price      float64 `json:"price"`

	LocationLabel  string  `json:"locationLabel"`
	LocationCoords *Coords `json:"locationCoords,omitempty"`

	Tags      []string `json:"tags"`
	Narrative string   `json:"narrative"`

	// Image (inline-encoded) and Emoji are mutually exclusive; use SetImage
	// and SetEmoji rather than assigning the fields directly.
	Image string `json:"image,omitempty"`
	Emoji string `json:"emoji,omitempty"`

	CreatedDate string `json:"createdDate"`

	// LikeCount is kept equal to len(LikedBy) after every mutation; it is
	// stored redundantly so older documents stay readable.
	LikeCount int      `json:"likeCount"`
	LikedBy   []string `json:"likedBy"`

	Comments []Comment `json:"comments"`
}

// SetImage attaches an inline-encoded image and clears the placeholder token.
func (e *Entry) SetImage(data string) {
	e.Image = data
	e.Emoji = ""
}

// SetEmoji attaches a placeholder token and clears any inline image.
func (e *Entry) SetEmoji(token string) {
	e.Emoji = token
	e.Image = ""
}

// LikedByAccount reports whether the account id is in the LikedBy set.
func (e *Entry) LikedByAccount(accountID string) bool {
	for _, id := range e.LikedBy {
		if id == accountID {
			return true
		}
	}
	return false
}

// EntryDraft carries the user-supplied fields of a new entry. Identity,
// ownership, creation date and social counters are assigned by NewEntry.
type EntryDraft struct {
	Name           string
	Producer       string
	Category       string
	Rating         float64
	Strength       float64
	Bitterness     int
	Price          float64
	LocationLabel  string
	LocationCoords *Coords
	Tags           []string
	Narrative      string
	Image          string
	Emoji          string
}

// Validate checks the required fields: a non-empty name and a rating in (0, 5].
func (d *EntryDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return common.Validation(common.ErrorMissingName)
	}
	if d.Rating <= 0 || d.Rating > 5 {
		return common.Validation(common.ErrorZeroRating)
	}
	return nil
}

// NewEntry builds a complete Entry from a draft: fresh id, today's date,
// zeroed social counters, empty comment list. The media fields keep the
// draft's image/emoji exclusivity, defaulting to DefaultEmoji when neither
// is set.
func NewEntry(d EntryDraft, owner *Account) *Entry {
	e := &Entry{
		ID:             uuid.NewString(),
		OwnerID:        owner.ID,
		OwnerName:      owner.Username,
		Name:           strings.TrimSpace(d.Name),
		Producer:       strings.TrimSpace(d.Producer),
		Category:       d.Category,
		Rating:         d.Rating,
		Strength:       d.Strength,
		Bitterness:     d.Bitterness,
		Price:          d.Price,
		LocationLabel:  strings.TrimSpace(d.LocationLabel),
		LocationCoords: d.LocationCoords,
		Tags:           append([]string(nil), d.Tags...),
		Narrative:      d.Narrative,
		CreatedDate:    Today(),
		LikeCount:      0,
		LikedBy:        []string{},
		Comments:       []Comment{},
	}
	switch {
	case d.Image != "":
		e.SetImage(d.Image)
	case d.Emoji != "":
		e.SetEmoji(d.Emoji)
	default:
		e.SetEmoji(DefaultEmoji)
	}
	return e
}

// NewComment builds a comment with a fresh id and today's date. The text is
// stored as given; trimming and empty checks are the coordinator's job.
func NewComment(authorID, authorName, text string) Comment {
	return Comment{
		ID:         uuid.NewString(),
		AuthorID:   authorID,
		AuthorName: authorName,
		Text:       text,
		Date:       Today(),
	}
}
