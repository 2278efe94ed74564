package domain

import "fmt"

// HostOS is the closed set of host operating systems the engine bootstrap knows.
type HostOS int

const (
	HostLinux HostOS = iota + 1
	HostMacOS
	HostWindows
)

// ParseHostOS maps a GOOS value to a HostOS.
func ParseHostOS(goos string) (HostOS, error) {
	switch goos {
	case "linux":
		return HostLinux, nil
	case "darwin":
		return HostMacOS, nil
	case "windows":
		return HostWindows, nil
	default:
		return 0, fmt.Errorf("unsupported host os %q", goos)
	}
}

func (h HostOS) String() string {
	switch h {
	case HostLinux:
		return "linux"
	case HostMacOS:
		return "macos"
	case HostWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// Command describes an external program invocation.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return fmt.Sprintf("%s %v", c.Name, c.Args)
}

// EngineStartCommand returns the command that brings the container engine up on h.
func (h HostOS) EngineStartCommand() Command {
	switch h {
	case HostMacOS:
		return Command{Name: "open", Args: []string{"-a", "Docker"}}
	case HostWindows:
		return Command{Name: "powershell", Args: []string{
			"Start-Process",
			`"C:\Program Files\Docker\Docker\Docker Desktop.exe"`,
		}}
	default:
		return Command{Name: "systemctl", Args: []string{"start", "docker"}}
	}
}
