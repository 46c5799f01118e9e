package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSFreeBSD = "freebsd"
	OSOpenBSD = "openbsd"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AMCommand      = "am"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// OpenURL opens a web URL with the default system handler (browser)
func OpenURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("refusing to open non-web URL %q", rawURL)
	}

	name, args, err := openURLCommand(runtime.GOOS, parsed.String())
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	// The handler may outlive us; reap it in the background
	go cmd.Wait()
	return nil
}

// openURLCommand selects the launcher command for the given OS
func openURLCommand(goos, rawURL string) (string, []string, error) {
	switch goos {
	case OSDarwin: // macOS
		return OpenCommand, []string{rawURL}, nil
	case OSWindows:
		// the empty argument is the window title consumed by start
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", rawURL}, nil
	case OSLinux, OSFreeBSD, OSOpenBSD:
		return XDGOpenCommand, []string{rawURL}, nil
	case OSAndroid:
		return AMCommand, []string{"start", "-a", "android.intent.action.VIEW", "-d", rawURL}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// Opener adapts OpenURL to the browser.URLOpener interface
type Opener struct{}

// OpenURL opens rawURL with the default system handler
func (Opener) OpenURL(rawURL string) error {
	return OpenURL(rawURL)
}
