package platform

// Package platform contains OS integration used by the command line tools:
// output directories, PNG snapshot files and opening files in the default
// viewer.
