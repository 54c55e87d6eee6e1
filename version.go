package devutils

// Version is the library release version, surfaced by the CLI and the MCP
// server handshake.
var Version = "0.6.0"
