package version

// Version is overridden at build time with -ldflags "-X".
var Version = "0.4.0"

// Name is the program name shown in the title bar and help output.
const Name = "cheatmenu"
