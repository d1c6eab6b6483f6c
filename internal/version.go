package internal

// Version is the current milo release version.
const Version = "0.1.0"
