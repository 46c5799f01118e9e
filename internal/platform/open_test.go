package platform

import (
	"testing"
)

func TestOpenURLCommand(t *testing.T) {
	const link = "https://www.youtube.com/watch?v=abc"

	tests := []struct {
		goos     string
		name     string
		lastArg  string
		argCount int
	}{
		{OSDarwin, OpenCommand, link, 1},
		{OSWindows, CmdCommand, link, 4},
		{OSLinux, XDGOpenCommand, link, 1},
		{OSFreeBSD, XDGOpenCommand, link, 1},
		{OSAndroid, AMCommand, link, 5},
	}

	for _, test := range tests {
		name, args, err := openURLCommand(test.goos, link)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", test.goos, err)
		}
		if name != test.name {
			t.Errorf("%s: expected command %s, got %s", test.goos, test.name, name)
		}
		if len(args) != test.argCount {
			t.Errorf("%s: expected %d args, got %v", test.goos, test.argCount, args)
		}
		if args[len(args)-1] != test.lastArg {
			t.Errorf("%s: expected URL as last arg, got %v", test.goos, args)
		}
	}
}

func TestOpenURLCommand_Unsupported(t *testing.T) {
	if _, _, err := openURLCommand("plan9", "https://example.com"); err == nil {
		t.Error("Expected error for unsupported OS")
	}
}

func TestOpenURL_RejectsNonWebScheme(t *testing.T) {
	for _, raw := range []string{"file:///etc/passwd", "javascript:alert(1)", "ftp://x"} {
		if err := OpenURL(raw); err == nil {
			t.Errorf("Expected %q to be rejected", raw)
		}
	}
}
