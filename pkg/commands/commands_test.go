package commands

import (
	"testing"

	"tableflip.dev/datefield/pkg/commands/options"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, path := range [][]string{
		{"sections"}, {"adjust"}, {"edit"}, {"excel"}, {"mcp"}, {"version"}, {"completion"},
		{"preset", "save"}, {"preset", "list"}, {"preset", "rm"},
	} {
		cmd, rest, err := root.Find(path)
		if err != nil || len(rest) != 0 || cmd.Name() != path[len(path)-1] {
			t.Fatalf("expected command %v, got %v (rest %v, err %v)", path, cmd.Name(), rest, err)
		}
	}
}

func TestFieldOptionsSettings(t *testing.T) {
	fo := &options.FieldOptions{Date: "2023-01-05T00:00:00Z", Spacious: true, MinutesStep: 5}
	fo.SetFormat([]string{"HH:mm"})
	st := fo.Settings()
	if st.Format != "HH:mm" || st.Value != fo.Date || st.MinutesStep != 5 {
		t.Fatalf("unexpected settings %+v", st)
	}
	if st.Density != "spacious" {
		t.Fatalf("expected spacious, got %q", st.Density)
	}
	fo.SetFormat(nil)
	if fo.Format != "HH:mm" {
		t.Fatalf("expected no args to keep the format, got %q", fo.Format)
	}
}
