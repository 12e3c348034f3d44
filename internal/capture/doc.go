// Package capture derives the calendar date an image was taken, from EXIF
// metadata first and from a YYYYMMDD run in the file name second.
//
// Date is the day-resolution value the rest of the organizer formats into
// file and directory names and uses as a collision key.
package capture
