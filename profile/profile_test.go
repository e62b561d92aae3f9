package profile

import "testing"

func TestParse(t *testing.T) {
	for in, want := range map[string]Profile{
		"java": Java, "j": Java,
		"bedrock": BedrockDisk, "b": BedrockDisk,
		"network": BedrockNetwork, "n": BedrockNetwork,
	} {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got.String() != want.String() {
			t.Errorf("Parse(%q): got %v want %v", in, got, want)
		}
	}
	if _, err := Parse("pocket"); err == nil {
		t.Error("Parse(pocket) accepted")
	}
}

func TestPresets(t *testing.T) {
	if !Java.NamedRoot || Java.VarLength || !Java.ModifiedUTF8 {
		t.Errorf("java preset: %+v", Java)
	}
	if !BedrockDisk.NamedRoot || !BedrockDisk.VarLength || BedrockDisk.ModifiedUTF8 {
		t.Errorf("bedrock preset: %+v", BedrockDisk)
	}
	if BedrockNetwork.NamedRoot {
		t.Error("network preset has a named root")
	}
}
