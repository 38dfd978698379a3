// Package services contains the client-side application services:
// remembering a login between sessions and persisting user preferences.
// Both sit on top of the local metadata repository.
package services
