package safety

// Truncation limits applied to command text when it is echoed or persisted.
const (
	// CommandLogLimit is the maximum number of characters of command text
	// stored in one audit log entry.
	CommandLogLimit = 200

	// CommandEchoLimit is the maximum number of characters of command text
	// echoed back to the operator when a command is blocked.
	CommandEchoLimit = 100
)

// Advisory flags a sensitive but allowed operation. Advisories are a side
// channel for the operator; they are not part of the allow/block decision.
type Advisory struct {
	Pattern     string
	Description string
}

// Decision is the outcome of evaluating one command.
// Reason is empty when not blocked, else the literal text of the matched
// dangerous pattern.
type Decision struct {
	Blocked    bool
	Reason     string
	Advisories []Advisory
}

// Evaluate tests command against the dangerous patterns in list order and
// short-circuits on the first match. If nothing dangerous matches, all
// sensitive patterns are evaluated and each match yields one advisory.
//
// Evaluate is pure: it writes nothing and is safe to call repeatedly with
// the same input. The caller owns the audit side effect.
func Evaluate(command string) Decision {
	if command == "" {
		return Decision{}
	}

	for _, p := range DangerousPatterns {
		if p.Matches(command) {
			return Decision{Blocked: true, Reason: p.Expr}
		}
	}

	var advisories []Advisory
	for _, p := range SensitivePatterns {
		if p.Matches(command) {
			advisories = append(advisories, Advisory{Pattern: p.Expr, Description: p.Description})
		}
	}
	return Decision{Advisories: advisories}
}

// Truncate limits s to at most max characters. Truncation counts runes, not
// bytes, so a multi-byte character is never split in half.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
