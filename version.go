package main

// Version is the semtag CLI version, reported by --version.
var Version = "1.0.0"
