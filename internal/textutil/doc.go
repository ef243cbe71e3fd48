// Package textutil normalizes user-supplied text, such as book titles, into
// strings that are safe to use as file names.
package textutil
