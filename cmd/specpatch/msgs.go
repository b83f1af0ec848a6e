package specpatch

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Targeted rewrites for Jest spec files"
	MsgStripArgShort   = "Remove the placeholder first argument from adapter mock assertions"
	MsgResetOffShort   = "Comment out container reset calls in spec files"
	MsgResetOnShort    = "Restore previously commented-out container reset calls"
	MsgInsertArgShort  = "Prepend the placeholder argument to known mock assertions in failing specs"
	MsgGenConfigShort  = "Generate a config file showing available options"
	MsgGuideShort      = "Show the user guide"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "specpatch version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrStripArg  = "failed to strip placeholder arguments: %w"
	MsgErrResetOff  = "failed to disable container resets: %w"
	MsgErrResetOn   = "failed to restore container resets: %w"
	MsgErrInsertArg = "failed to insert placeholder arguments: %w"
	MsgErrGenConfig = "failed to generate config: %w"

	// Flag descriptions
	MsgFlagRoot      = "Project root to operate on (default: $SPECPATCH_ROOT, then the working directory)"
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without writing files"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagBackup    = "Copy each file aside before rewriting it"
	MsgFlagJUnit     = "Read failing spec files from a JUnit XML report instead of the manifest"
	MsgFlagWrite     = "Write config to file instead of stdout"
	MsgFlagEffective = "Show the merged configuration currently in force"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/strip-arg-long.txt
	msgStripArgLongRaw string
	MsgStripArgLong    = strings.TrimSpace(msgStripArgLongRaw)

	//go:embed msgs/strip-arg-example.txt
	msgStripArgExampleRaw string
	MsgStripArgExample    = strings.TrimSpace(msgStripArgExampleRaw)

	//go:embed msgs/reset-off-long.txt
	msgResetOffLongRaw string
	MsgResetOffLong    = strings.TrimSpace(msgResetOffLongRaw)

	//go:embed msgs/reset-off-example.txt
	msgResetOffExampleRaw string
	MsgResetOffExample    = strings.TrimSpace(msgResetOffExampleRaw)

	//go:embed msgs/reset-on-long.txt
	msgResetOnLongRaw string
	MsgResetOnLong    = strings.TrimSpace(msgResetOnLongRaw)

	//go:embed msgs/reset-on-example.txt
	msgResetOnExampleRaw string
	MsgResetOnExample    = strings.TrimSpace(msgResetOnExampleRaw)

	//go:embed msgs/insert-arg-long.txt
	msgInsertArgLongRaw string
	MsgInsertArgLong    = strings.TrimSpace(msgInsertArgLongRaw)

	//go:embed msgs/insert-arg-example.txt
	msgInsertArgExampleRaw string
	MsgInsertArgExample    = strings.TrimSpace(msgInsertArgExampleRaw)

	//go:embed msgs/gen-config-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/gen-config-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimSpace(msgGenConfigExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
