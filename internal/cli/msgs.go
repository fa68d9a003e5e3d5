package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort    = "Render values as collapsible, color-coded trees"
	MsgDumpShort    = "Dump documents to the terminal or as HTML"
	MsgServeShort   = "Serve dumps over HTTP"
	MsgExportShort  = "Write dumps as a static site"
	MsgVersionShort = "Print version information"
	MsgManShort     = "Generate the man page"

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/insightdump/config.toml)"
	MsgFlagFormat   = "Output format: auto, html, term or text"
	MsgFlagMaxDepth = "Levels rendered before the max depth marker"
	MsgFlagEscape   = "HTML-escape text values"
	MsgFlagInput    = "Format of standard input: json, yaml, toml, xml or hcl"
	MsgFlagWatch    = "Render again whenever a file changes"
	MsgFlagAddr     = "Address to listen on"
	MsgFlagOut      = "Directory to write the site to"
	MsgFlagForce    = "Replace files left by a previous export"
	MsgFlagDryRun   = "Show what would be written without writing it"
	MsgFlagTitle    = "Title of the index page"

	MsgFileHeader    = "==> %s <==\n"
	MsgServing       = "Serving %d document(s) on http://%s"
	MsgShuttingDown  = "Shutting down"
	MsgExported      = "Exported %d document(s) to %s"
	MsgExportPlanned = "Would write %s (%d bytes)"
	MsgWatching      = "Watching %d file(s), press Ctrl+C to stop"

	MsgErrStdinWatch = "standard input cannot be watched"
	MsgErrStdinServe = "standard input cannot be served, name the files instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/dump-long.txt
	msgDumpLongRaw string
	MsgDumpLong    = strings.TrimSpace(msgDumpLongRaw)

	//go:embed msgs/dump-example.txt
	msgDumpExampleRaw string
	MsgDumpExample    = strings.TrimRight(msgDumpExampleRaw, "\n")

	//go:embed msgs/serve-long.txt
	msgServeLongRaw string
	MsgServeLong    = strings.TrimSpace(msgServeLongRaw)

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)
)
