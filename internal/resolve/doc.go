// Package resolve runs the interactive selection of an artist and one of
// their albums.
//
// The Resolver moves between three states:
//
//	ArtistSelect --Continue--> AlbumSelect --Continue--> Tagging
//	     ^                         |
//	     +---------Back------------+
//	                               |
//	                             Exit (no albums)
//
// Inside ArtistSelect the user picks auto-guess or manual entry; an
// auto-guess that yields nothing moves on to manual entry directly.
//
// Prompts go through a Prompter. Console reads numbered choices from a
// line-based reader; the tui package offers a Bubble Tea alternative.
//
//	resolver := resolve.NewResolver(catalog, resolve.NewConsole(os.Stdin, os.Stdout, console.Report),
//	    console.Report, "Portishead", 5)
//	selection, err := resolver.Resolve(ctx)
//	if errors.Is(err, resolve.ErrNoAlbumSelected) {
//	    // exit 1
//	}
package resolve
