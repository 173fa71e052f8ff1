package server

// Version is overridable at build time with -ldflags.
var Version = "0.1.0"
