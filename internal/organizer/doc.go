// Package organizer decides where each file should end up.
//
// A Planner turns a file's kind and extracted metadata into a RenamePlan.
// Flat mode renames in place (IMG_<date>.jpg, <Title>.(<year>).<ext>, or a
// prefix/suffix for plain files). Organized mode buckets images under
// <year>/<date>.<ext> and videos under <year>/<Title>.(<year>)/. Colliding
// names get "-NN" suffixes from a run-scoped naming.Counter.
package organizer
