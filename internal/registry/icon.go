package registry

import (
	"fmt"
	"strconv"
)

// Icon is a KeePass standard icon index.
type Icon int64

// Standard icon names in KeePass order.
var iconNames = []string{
	"Key", "World", "Warning", "NetworkServer", "MarkedDirectory",
	"UserCommunication", "Parts", "Notepad", "WorldSocket", "Identity",
	"PaperReady", "Digicam", "IRCommunication", "MultiKeys", "Energy",
	"Scanner", "WorldStar", "CDRom", "Monitor", "EMail",
	"Configuration", "ClipboardReady", "PaperNew", "Screen", "EnergyCareful",
	"EMailBox", "Disk", "Drive", "PaperQ", "TerminalEncrypted",
	"Console", "Printer", "ProgramIcons", "Run", "Settings",
	"WorldComputer", "Archive", "Homebanking", "DriveWindows", "Clock",
	"EMailSearch", "PaperFlag", "Memory", "TrashBin", "Note",
	"Expired", "Info", "Package", "Folder", "FolderOpen",
	"FolderPackage", "LockOpen", "PaperLocked", "Checked", "Pen",
	"Thumbnail", "Book", "List", "UserKey", "Tool",
	"Home", "Star", "Tux", "Feather", "Apple",
	"Wiki", "Money", "Certificate", "BlackBerry",
}

// ParseIcon resolves an icon by name ("Homebanking") or by index ("37").
func ParseIcon(s string) (Icon, error) {
	for i, name := range iconNames {
		if name == s {
			return Icon(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(iconNames) {
		return Icon(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIcon, s)
}

// String returns the KeePass icon name.
func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return "Icon(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return iconNames[i]
}
