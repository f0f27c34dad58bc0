package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/mp3-autotag/internal/model"
	"github.com/handiism/mp3-autotag/internal/report"
)

// State is a step of the selection session.
type State int

const (
	ArtistSelect State = iota
	AlbumSelect
	Tagging
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case ArtistSelect:
		return "artist-select"
	case AlbumSelect:
		return "album-select"
	case Tagging:
		return "tagging"
	default:
		return "unknown"
	}
}

// Transition is the outcome of a state.
type Transition int

const (
	// Continue moves to the next state.
	Continue Transition = iota
	// Back returns to the previous state.
	Back
	// Exit ends the session without a selection.
	Exit
)

// String returns the transition name.
func (t Transition) String() string {
	switch t {
	case Continue:
		return "continue"
	case Back:
		return "back"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Next returns the state that follows s after t. The second result is
// false when the session ends without a selection.
func Next(s State, t Transition) (State, bool) {
	switch {
	case t == Exit:
		return s, false
	case s == ArtistSelect && t == Continue:
		return AlbumSelect, true
	case s == AlbumSelect && t == Continue:
		return Tagging, true
	case s == AlbumSelect && t == Back:
		return ArtistSelect, true
	default:
		return s, true
	}
}

// Catalog looks up artists and albums. *musicbrainz.Client implements it.
type Catalog interface {
	SearchArtists(ctx context.Context, name string) []model.Artist
	AlbumsByArtist(ctx context.Context, artistID string) []*model.Album
}

// artistStep is a step inside ArtistSelect.
type artistStep int

const (
	stepMode artistStep = iota
	stepAutoGuess
	stepManual
)

// Input modes listed in the mode menu.
const (
	modeAutoGuess = 1
	modeManual    = 2
)

// Resolver runs one selection session.
type Resolver struct {
	catalog     Catalog
	prompter    Prompter
	onProgress  report.Func
	guessName   string
	suggestions int
}

// NewResolver returns a Resolver. guessName is the query used by the
// auto-guess mode and suggestions caps the number of artists it offers.
func NewResolver(catalog Catalog, prompter Prompter, onProgress report.Func, guessName string, suggestions int) *Resolver {
	if suggestions < 1 {
		suggestions = 5
	}
	return &Resolver{
		catalog:     catalog,
		prompter:    prompter,
		onProgress:  onProgress,
		guessName:   guessName,
		suggestions: suggestions,
	}
}

// Resolve asks for an artist and an album until the user confirms an album.
//
// It returns ErrNoAlbumSelected when the chosen artist has no albums and
// ErrInputClosed when the input ends.
func (r *Resolver) Resolve(ctx context.Context) (*model.Selection, error) {
	var (
		state  = ArtistSelect
		artist model.Artist
		album  *model.Album
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			transition Transition
			err        error
		)
		switch state {
		case ArtistSelect:
			artist, err = r.selectArtist(ctx)
			transition = Continue
		case AlbumSelect:
			album, transition, err = r.selectAlbum(ctx, artist)
		case Tagging:
			return &model.Selection{Artist: artist, Album: album}, nil
		}
		if err != nil {
			return nil, err
		}

		next, ok := Next(state, transition)
		if !ok {
			r.onProgress.Send(report.LevelError, "No album selected. Exiting.")
			return nil, ErrNoAlbumSelected
		}
		if state == AlbumSelect && next == ArtistSelect {
			r.onProgress.Send(report.LevelInfo, "Going back to artist selection.")
		}
		state = next
	}
}

// selectArtist runs the input-mode menu, the auto-guess and manual entry
// until an artist is found.
func (r *Resolver) selectArtist(ctx context.Context) (model.Artist, error) {
	step := stepMode
	for {
		switch step {
		case stepMode:
			mode, err := r.chooseMode()
			if err != nil {
				return model.Artist{}, err
			}
			step = stepManual
			if mode == modeAutoGuess {
				step = stepAutoGuess
			}

		case stepAutoGuess:
			artist, found, err := r.guessArtist(ctx)
			if err != nil {
				return model.Artist{}, err
			}
			if found {
				return artist, nil
			}
			r.onProgress.Send(report.LevelWarning, "No artist guessed. Switching to manual input.")
			step = stepManual

		case stepManual:
			artist, transition, err := r.manualArtist(ctx)
			if err != nil {
				return model.Artist{}, err
			}
			if transition == Back {
				step = stepMode
				continue
			}
			return artist, nil
		}
	}
}

func (r *Resolver) chooseMode() (int, error) {
	return r.prompter.Select(Menu{
		Title: "Choose input mode:",
		Items: []string{
			"Auto-guess artist from directory name",
			"Manually input artist name",
		},
		Prompt:  "Enter your choice (1 or 2):",
		Invalid: "Invalid selection. Please choose 1 or 2.",
	})
}

// guessArtist offers the best matches for the directory name. found is
// false when nothing matched or the user skipped.
func (r *Resolver) guessArtist(ctx context.Context) (artist model.Artist, found bool, err error) {
	r.onProgress.Send(report.LevelInfo, fmt.Sprintf("Guessing artist based on directory name: %s", r.guessName))
	if r.guessName == "" {
		return model.Artist{}, false, nil
	}

	artists := r.catalog.SearchArtists(ctx, r.guessName)
	if len(artists) == 0 {
		return model.Artist{}, false, nil
	}
	if len(artists) > r.suggestions {
		artists = artists[:r.suggestions]
	}

	items := make([]string, len(artists))
	for i, a := range artists {
		items[i] = a.Label()
	}

	choice, err := r.prompter.Select(Menu{
		Title:     fmt.Sprintf("Found potential matches for '%s':", r.guessName),
		Items:     items,
		Prompt:    "Enter the number of the correct artist (or press Enter to skip):",
		AllowSkip: true,
	})
	if errors.Is(err, ErrSkipped) {
		return model.Artist{}, false, nil
	}
	if err != nil {
		return model.Artist{}, false, err
	}

	artist = artists[choice-1]
	r.onProgress.Send(report.LevelSuccess, fmt.Sprintf("Selected artist: %s", artist.Name))
	return artist, true, nil
}

// manualArtist asks for a name until a search returns results and takes
// the first one. The resolved artist keeps the typed name, which is the
// artist written to files whose album has no credit. An empty name gives up
// and returns Back.
func (r *Resolver) manualArtist(ctx context.Context) (model.Artist, Transition, error) {
	for {
		name, err := r.prompter.Input("Enter artist name:")
		if err != nil {
			return model.Artist{}, Exit, err
		}
		if name == "" {
			return model.Artist{}, Back, nil
		}

		artists := r.catalog.SearchArtists(ctx, name)
		if len(artists) == 0 {
			r.onProgress.Send(report.LevelWarning, "No artist found. Try again.")
			continue
		}

		artist := artists[0]
		r.onProgress.Send(report.LevelSuccess, fmt.Sprintf("Found artist: %s", artist.Label()))
		artist.Name = name
		return artist, Continue, nil
	}
}

// selectAlbum lists the artist's albums with a back entry.
func (r *Resolver) selectAlbum(ctx context.Context, artist model.Artist) (*model.Album, Transition, error) {
	albums := r.catalog.AlbumsByArtist(ctx, artist.ID)
	if len(albums) == 0 {
		r.onProgress.Send(report.LevelError, "No albums found.")
		return nil, Exit, nil
	}

	items := make([]string, len(albums))
	for i, a := range albums {
		items[i] = a.Label()
	}

	choice, err := r.prompter.Select(Menu{
		Title:  "Choose an album to tag files:",
		Items:  items,
		Prompt: "Enter album number:",
		Back:   "Back",
	})
	if errors.Is(err, ErrBack) {
		return nil, Back, nil
	}
	if err != nil {
		return nil, Exit, err
	}

	album := albums[choice-1]
	r.onProgress.Send(report.LevelSuccess, fmt.Sprintf("Selected album: %s", album.Title))
	return album, Continue, nil
}
