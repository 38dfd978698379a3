// Package cli implements the interactive lechworld shell.
//
// The shell lists family members as framed cards, edits their frame colours
// and emoji, imports members exported by the web app, remembers one login
// locally and switches the colour theme. When the family database cannot be
// reached it starts in offline mode, where only the local features work.
package cli
