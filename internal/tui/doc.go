// Package tui provides a Bubble Tea picker for the interactive session of
// mp3-autotag.
//
// Prompter implements resolve.Prompter. Each menu or text prompt runs as a
// short Bubble Tea program, so progress lines printed between prompts stay
// in the terminal scrollback:
//
//	prompter := tui.NewPrompter(os.Stdin, os.Stdout)
//	resolver := resolve.NewResolver(catalog, prompter, console.Report, guess, 5)
//
// Menus are navigated with up/down (or k/j) and confirmed with enter.
// Typing a number and pressing enter picks that entry directly, 0 or esc
// goes back where a back entry exists and ctrl+c aborts the session.
package tui
