// Package family stores family members and turns them into what the UI
// shows: a name, a framed card colour pair and a profile emoji.
//
// Members live in Postgres. Only the fields the presentation needs are
// persisted; the optional style columns are NULL until a user picks a custom
// frame or emoji, in which case memberstyle falls back to name-derived
// defaults.
package family
