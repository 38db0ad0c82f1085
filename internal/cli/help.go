package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// "Usage:", "Available Commands:", "Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// "  burnbite config get [key]" directly under Usage:
	usageLineRe = regexp.MustCompile(`^( {2})(burnbite(?: \S+)*)$`)
	// "  commandname   description text"
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// "  -v, --verbose   description"
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// `Use "burnbite [command] --help" for more information`
	footerRe = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc returns a help function that colorizes cobra's default usage output.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var result strings.Builder
		if long := strings.TrimSpace(cmd.Long); long != "" {
			result.WriteString(Text(long))
			result.WriteString("\n\n")
		}
		for _, line := range strings.Split(buf.String(), "\n") {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}

		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

// colorizeLine applies color rules to a single line of help output.
func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)

	if sectionHeaderRe.MatchString(trimmed) {
		return Info(line)
	}
	if footerRe.MatchString(trimmed) {
		return Silent(line)
	}
	if m := usageLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2])
	}
	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}

	return Text(line)
}
