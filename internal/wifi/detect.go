package wifi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	nl80211 "github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"
)

// Backend names a scanning mechanism.
type Backend string

const (
	BackendAuto   Backend = "auto"
	BackendNmcli  Backend = "nmcli"
	BackendIW     Backend = "iw"
	BackendIWList Backend = "iwlist"
	BackendWPA    Backend = "wpa"
	BackendDemo   Backend = "demo"
)

var (
	// ErrNoBackend is returned when no scanning tool is available.
	ErrNoBackend = errors.New("no wifi scanning backend available (install nmcli, iw or iwlist, or run wpa_supplicant)")
	// ErrUnknownBackend is returned for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrInterfaceNotFound is returned when an explicitly requested interface does not exist.
	ErrInterfaceNotFound = errors.New("wireless interface not found")
)

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case BackendAuto, BackendNmcli, BackendIW, BackendIWList, BackendWPA, BackendDemo:
		return b, nil
	case "":
		return BackendAuto, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownBackend, s)
}

// probe reports which backends can run on this host.
type probe struct {
	command func(name string) bool
	wpa     func(iface string) bool
}

var hostProbe = probe{command: commandAvailable, wpa: WPAAvailable}

// selectBackend resolves BackendAuto to the first usable backend, in order
// nmcli, iw, iwlist, wpa.
func selectBackend(p probe, b Backend, iface string) (Backend, error) {
	if b != BackendAuto {
		return b, nil
	}
	switch {
	case p.command("nmcli"):
		return BackendNmcli, nil
	case p.command("iw"):
		return BackendIW, nil
	case p.command("iwlist"):
		return BackendIWList, nil
	case p.wpa(iface):
		return BackendWPA, nil
	}
	return "", ErrNoBackend
}

// Options configures NewScanner.
type Options struct {
	Interface string
	Backend   Backend
	Logger    logrus.FieldLogger
}

// NewScanner returns the Scanner for opts along with the backend chosen.
func NewScanner(opts Options) (Scanner, Backend, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	backend, err := selectBackend(hostProbe, opts.Backend, opts.Interface)
	if err != nil {
		return nil, "", err
	}
	log.WithFields(logrus.Fields{
		"backend":   backend,
		"interface": opts.Interface,
	}).Debug("selected scan backend")

	switch backend {
	case BackendNmcli:
		return NewNmcliScanner(opts.Interface), backend, nil
	case BackendIW:
		return NewIWScanner(opts.Interface), backend, nil
	case BackendIWList:
		return NewIWListScanner(opts.Interface), backend, nil
	case BackendWPA:
		return NewWPAScanner(opts.Interface), backend, nil
	case BackendDemo:
		return NewMockScanner(nil), backend, nil
	}
	return nil, "", fmt.Errorf("%w %q", ErrUnknownBackend, backend)
}

// ResolveInterface checks requested against the wireless interfaces on the
// host. When explicit is false and requested does not exist, the first
// station interface is used instead. When no interfaces can be listed,
// requested is returned unchanged and the backend reports any failure.
func ResolveInterface(ctx context.Context, log logrus.FieldLogger, requested string, explicit bool) (string, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	names := listInterfaces(ctx, log)
	iface, err := pickInterface(requested, explicit, names)
	if err != nil {
		return "", err
	}
	if iface != requested {
		log.WithFields(logrus.Fields{
			"requested": requested,
			"using":     iface,
		}).Info("default interface not present, using first wireless interface")
	}
	return iface, nil
}

func pickInterface(requested string, explicit bool, names []string) (string, error) {
	if len(names) == 0 {
		return requested, nil
	}
	for _, n := range names {
		if n == requested {
			return requested, nil
		}
	}
	if explicit {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrInterfaceNotFound, requested, strings.Join(names, ", "))
	}
	return names[0], nil
}

// listInterfaces asks nl80211 for station interfaces, falling back to
// parsing `iw dev` when netlink is unavailable.
func listInterfaces(ctx context.Context, log logrus.FieldLogger) []string {
	names, err := nl80211Interfaces()
	if err == nil {
		return names
	}
	log.WithError(err).Debug("nl80211 unavailable, falling back to iw dev")

	if !commandAvailable("iw") {
		return nil
	}
	out, err := runCommand(ctx, "iw", "dev")
	if err != nil {
		log.WithError(err).Debug("iw dev failed")
		return nil
	}
	return parseIWDev(string(out))
}

func nl80211Interfaces() ([]string, error) {
	c, err := nl80211.New()
	if err != nil {
		return nil, err
	}
	defer c.Close()

	ifis, err := c.Interfaces()
	if err != nil {
		return nil, err
	}

	var names []string
	for _, ifi := range ifis {
		if ifi.Name == "" || ifi.Type != nl80211.InterfaceTypeStation {
			continue
		}
		names = append(names, ifi.Name)
	}
	return names, nil
}
