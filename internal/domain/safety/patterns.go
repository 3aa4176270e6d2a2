// Package safety provides the command-guard logic that vets shell commands
// before an agent executes them. It holds two static, ordered pattern lists:
// dangerous patterns whose match unconditionally blocks execution, and
// sensitive patterns whose match only surfaces an advisory.
//
// Pattern order is part of the contract: when several dangerous patterns
// match the same command, the first one in list order is the one reported.
package safety

import "regexp"

// Pattern is one entry of a pattern list. Expr keeps the source text of the
// expression, which is what decisions and audit entries reference.
type Pattern struct {
	Expr        string
	Description string
	re          *regexp.Regexp
}

// Matches reports whether the pattern matches anywhere in command.
// Matching is case-insensitive and unanchored.
func (p Pattern) Matches(command string) bool {
	return p.re.MatchString(command)
}

// mustPattern compiles expr with case-insensitive, unanchored matching.
// Panics on an invalid expression: a malformed pattern list is a fatal
// configuration error at process start, never an evaluation-time failure.
func mustPattern(expr, description string) Pattern {
	return Pattern{
		Expr:        expr,
		Description: description,
		re:          regexp.MustCompile(`(?i)` + expr),
	}
}

// DangerousPatterns contains all patterns whose match blocks a command.
// The list order determines which match is reported when several apply.
//
//nolint:gochecknoglobals // intentionally a package-level constant pattern list
var DangerousPatterns = []Pattern{
	// rm with -rf/-fr/--force targeting /, ~ or $HOME deletes data that is
	// not recoverable from the project trash
	mustPattern(`rm\s+(-\w+\s+)*(-rf|-fr|--force)\s+(/|~|\$HOME)`, "recursive force delete of a root-level path"),
	// chmod 777 makes files writable by every user and process
	mustPattern(`chmod\s+(-R\s+)?777`, "world-writable permission change"),
	// redirecting into /dev/sd* overwrites disk sectors behind the filesystem
	mustPattern(`>\s*/dev/sd[a-z]`, "raw write to a disk device"),
	// mkfs destroys all existing data on the target device
	mustPattern(`mkfs\.`, "filesystem creation on a device"),
	// dd onto a block device duplicates straight over disk contents
	mustPattern(`dd\s+if=.*of=/dev/`, "raw block-device write via dd"),
	// the canonical :(){ :|:& };: definition-and-invocation idiom
	mustPattern(`:\(\)\s*\{\s*:\s*\|\s*:\s*&\s*\}\s*;\s*:`, "shell fork bomb"),
	// Windows recursive quiet delete of a drive root
	mustPattern(`del\s+/s\s+/q\s+[a-z]:\\`, "recursive quiet delete of a drive root"),
	// Windows recursive quiet directory removal of a drive root
	mustPattern(`rmdir\s+/s\s+/q\s+[a-z]:\\`, "recursive quiet removal of a drive root"),
	// Windows drive format
	mustPattern(`format\s+[a-z]:`, "drive format"),
}

// SensitivePatterns contains the advisory-only patterns. A match never blocks
// execution and never stops evaluation of the remaining sensitive patterns.
//
//nolint:gochecknoglobals // intentionally a package-level constant pattern list
var SensitivePatterns = []Pattern{
	mustPattern(`git\s+push\s+.*--force`, "force push"),
	mustPattern(`git\s+reset\s+--hard`, "hard reset"),
	mustPattern(`drop\s+database`, "database drop"),
	mustPattern(`truncate\s+table`, "table truncation"),
}

// DescriptionFor returns the human-readable description of the dangerous
// pattern whose source text is expr, or "" if expr is not in the list.
func DescriptionFor(expr string) string {
	for _, p := range DangerousPatterns {
		if p.Expr == expr {
			return p.Description
		}
	}
	return ""
}
