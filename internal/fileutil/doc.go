// Package fileutil moves files without clobbering.
//
// Mover.Apply executes an organizer.RenamePlan with a no-replace rename,
// falling back to a verified copy and delete when the destination lives on
// another filesystem.
package fileutil
