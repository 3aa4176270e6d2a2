// Package hook models the JSON payload an agent runtime delivers to hook
// commands on standard input, one object per process invocation.
package hook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// MaxPayloadBytes caps stdin reads. Hook payloads are small JSON objects;
// 1 MB is generous headroom that prevents unbounded allocation.
const MaxPayloadBytes = 1 << 20

// ToolInput is the tool-specific portion of a hook payload.
type ToolInput struct {
	Command  string `json:"command,omitempty"   jsonschema_description:"Shell command text for Bash tool invocations."`
	FilePath string `json:"file_path,omitempty" jsonschema_description:"Target path for Write/Edit tool invocations."`
	Content  string `json:"content,omitempty"   jsonschema_description:"New file content for Write tool invocations."`
}

// Payload is the envelope delivered to every hook. Fields not relevant to a
// given event are simply absent.
type Payload struct {
	SessionID     string    `json:"session_id,omitempty"      jsonschema_description:"Identifier of the agent session that fired the hook."`
	CWD           string    `json:"cwd,omitempty"             jsonschema_description:"Working directory of the agent when the hook fired."`
	HookEventName string    `json:"hook_event_name,omitempty" jsonschema_description:"Name of the hook event, e.g. PreToolUse."`
	ToolName      string    `json:"tool_name,omitempty"       jsonschema_description:"Name of the tool about to run or just run."`
	ToolInput     ToolInput `json:"tool_input,omitempty"      jsonschema_description:"Tool-specific input fields."`

	// Command supports the bare {"command": "..."} carrier used by plain
	// invocations that bypass the full hook envelope.
	Command string `json:"command,omitempty" jsonschema_description:"Bare command carrier, equivalent to tool_input.command."`
}

// Decode reads one payload object from r. An empty stream decodes to the zero
// payload without error; a structurally invalid one returns an error that
// callers are expected to treat as "nothing to check", not as a failure.
func Decode(r io.Reader) (Payload, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPayloadBytes))
	if err != nil {
		return Payload{}, fmt.Errorf("read hook payload: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Payload{}, nil
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("decode hook payload: %w", err)
	}
	return p, nil
}

// CommandText returns the shell command carried by the payload, preferring
// the full envelope over the bare carrier. Empty when the payload carries no
// command at all.
func (p Payload) CommandText() string {
	if p.ToolInput.Command != "" {
		return p.ToolInput.Command
	}
	return p.Command
}

// TargetPath returns the file path the tool is about to touch, if any.
func (p Payload) TargetPath() string {
	return p.ToolInput.FilePath
}
