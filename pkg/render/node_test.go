package render

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestKindIsLayout(t *testing.T) {
	for kind, want := range map[Kind]bool{
		KindTextView:       false,
		KindButton:         false,
		KindEditText:       false,
		KindLinearLayout:   true,
		KindRelativeLayout: true,
	} {
		if got := kind.IsLayout(); got != want {
			t.Errorf("%s.IsLayout() = %v, want %v", kind, got, want)
		}
	}
}

func TestLeafNodeOmitsLayoutFields(t *testing.T) {
	node := Node{
		Kind:       KindTextView,
		ID:         "t",
		Visible:    true,
		Enabled:    true,
		Background: "#FFFFFF",
		Text:       &TextAttrs{Content: "x", Color: "#000000", Size: 14, Font: "Arial"},
	}
	data, err := json.Marshal(node)
	if err != nil {
		t.Fatal(err)
	}
	encoded := string(data)
	for _, absent := range []string{"padding", "children", "input"} {
		if strings.Contains(encoded, absent) {
			t.Errorf("leaf node encoding contains %q: %s", absent, encoded)
		}
	}
}
