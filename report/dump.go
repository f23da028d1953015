package report

import "gopkg.in/yaml.v3"

// yamlMessage is the wire shape for kyfoofront's diagformat=yaml output; it flattens
// TextPosition into plain ints so the dump reads cleanly without a custom
// MarshalYAML on Message itself.
type yamlMessage struct {
	Module  string   `yaml:"module"`
	Line    int      `yaml:"line,omitempty"`
	Column  int      `yaml:"column,omitempty"`
	Text    string   `yaml:"text"`
	Error   bool     `yaml:"error"`
	SeeAlso []string `yaml:"see_also,omitempty"`
}

// DumpYAML renders the full message list as a YAML document, for tooling
// that wants a machine-readable diagnostics stream instead of the console
// renderer.  This is ambient dump tooling external to the core sink
// contract described in spec.md §6, analogous to the spec's "JSON dumper"
// collaborator but for diagnostics.
func DumpYAML(r *Reporter) ([]byte, error) {
	var out []yamlMessage
	for _, msg := range r.Messages() {
		ym := yamlMessage{Module: msg.Module, Text: msg.Text, Error: msg.IsError}
		if msg.Position != nil {
			ym.Line = msg.Position.StartLn
			ym.Column = msg.Position.StartCol
		}
		for _, see := range msg.SeeAlso {
			ym.SeeAlso = append(ym.SeeAlso, see.Text)
		}
		out = append(out, ym)
	}

	return yaml.Marshal(out)
}
