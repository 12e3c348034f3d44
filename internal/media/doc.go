// Package media classifies files into the kinds the organizer knows how to
// name: images (detected from content), videos (detected from extension), and
// everything else.
package media
