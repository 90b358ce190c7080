package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"beervault/internal/common"
	"beervault/internal/models"
	"beervault/internal/state"
)

// AddEntry walks the user through a new tasting entry and submits it.
func (a *App) AddEntry(ctx context.Context) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}

	name, err := getSimpleText(a.reader, "Beer name", os.Stdout)
	if err != nil {
		return err
	}
	producer, err := getSimpleText(a.reader, "Brewery", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader,
		"Style ("+strings.Join(models.Categories, ", ")+")", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := GetFloat(a.reader, "Rating 0.5-5", os.Stdout)
	if err != nil {
		return err
	}
	strength, err := GetFloat(a.reader, "ABV % (optional)", os.Stdout)
	if err != nil {
		return err
	}
	bitterness, err := GetInt(a.reader, "IBU (optional)", os.Stdout)
	if err != nil {
		return err
	}
	price, err := GetFloat(a.reader, "Price (optional)", os.Stdout)
	if err != nil {
		return err
	}

	location, coords, err := a.askLocation()
	if err != nil {
		return err
	}

	tagsLine, err := getSimpleText(a.reader,
		"Flavors, comma-separated ("+strings.Join(models.FlavorOptions, ", ")+")", os.Stdout)
	if err != nil {
		return err
	}
	var tags []string
	for _, t := range strings.Split(tagsLine, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	narrative, err := GetMultiline(a.reader, "Tasting notes", os.Stdout)
	if err != nil {
		return err
	}

	draft := models.EntryDraft{
		Name:           name,
		Producer:       producer,
		Category:       category,
		Rating:         rating,
		Strength:       strength,
		Bitterness:     bitterness,
		Price:          price,
		LocationLabel:  location,
		LocationCoords: coords,
		Tags:           tags,
		Narrative:      narrative,
	}

	entry, err := a.coord.AddEntry(ctx, draft, sess.ID)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			fmt.Println(err.Error())
			return nil
		}
		return err
	}

	fmt.Printf("Added %s (id %s)\n", entry.Name, entry.ID)
	return nil
}

// askLocation reads a free-text location and offers the fixed suggestion
// list. Coordinates are attached only when a suggestion is picked.
func (a *App) askLocation() (string, *models.Coords, error) {
	location, err := getSimpleText(a.reader, "Location (optional)", os.Stdout)
	if err != nil {
		return "", nil, err
	}

	suggestions := state.SuggestLocations(location)
	if len(suggestions) == 0 {
		return location, nil, nil
	}

	fmt.Println("Did you mean:")
	for i, s := range suggestions {
		fmt.Printf("  %d. %s\n", i+1, s.Name)
	}
	pick, err := GetInt(a.reader, "Pick a number, or Enter to keep your text", os.Stdout)
	if err != nil || pick < 1 || pick > len(suggestions) {
		return location, nil, nil
	}

	chosen := suggestions[pick-1]
	coords := chosen.Coords
	return chosen.Name, &coords, nil
}

// Like toggles the session account's like on an entry.
func (a *App) Like(ctx context.Context, id string) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}
	id, err := a.resolveEntryID(id)
	if err != nil || id == "" {
		return err
	}

	if err := a.coord.ToggleLike(ctx, id, sess.ID); err != nil {
		return err
	}
	if e := a.coord.State().EntryByID(id); e != nil {
		fmt.Printf("%s now has %d like(s)\n", e.Name, e.LikeCount)
	}
	return nil
}

// Comment appends a comment to an entry. Whitespace-only text is dropped
// silently, matching the coordinator contract.
func (a *App) Comment(ctx context.Context, id string) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}
	id, err := a.resolveEntryID(id)
	if err != nil || id == "" {
		return err
	}

	text, err := getSimpleText(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}
	return a.coord.AddComment(ctx, id, sess.ID, sess.Username, text)
}

// Delete removes one of the session account's own entries, after confirming.
func (a *App) Delete(ctx context.Context, id string) error {
	sess := a.requireSession()
	if sess == nil {
		return nil
	}
	id, err := a.resolveEntryID(id)
	if err != nil || id == "" {
		return err
	}

	sure, err := GetYesNo(a.reader, "Delete this entry?", os.Stdout)
	if err != nil || !sure {
		return err
	}

	if err := a.coord.DeleteEntry(ctx, id, sess.ID); err != nil {
		if errors.Is(err, common.ErrorNotOwner) {
			fmt.Println("You can only delete your own entries")
			return nil
		}
		return err
	}
	fmt.Println("Deleted")
	return nil
}

// resolveEntryID prompts for an id when the command came without one.
func (a *App) resolveEntryID(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	return getSimpleText(a.reader, "Entry id", os.Stdout)
}
