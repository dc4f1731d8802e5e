package catalog

const (
	LabelRequired = "Required packages"
	LabelGUI      = "GUI programs"
	LabelCLI      = "CLI programs"
	LabelUseless  = "Useless programs"
)

var (
	requiredPackages = []string{
		"cargo", "eza", "fd", "fzf", "gcc", "git", "gzip", "lua", "luarocks",
		"neovim", "python3", "ripgrep", "rustc", "unzip", "wget",
		"wl-clipboard", "xclip",
	}
	guiPrograms = []string{
		"arduino-ide", "chromium", "datagrip", "davinci-resolve", "discord",
		"drawio", "eog", "ghostty", "inkscape", "jellyfin-media-player",
		"krita", "libreoffice", "lollypop", "lunar-client", "obsidian",
		"onlyoffice", "orca-slicer", "parsec-bin", "qbittorrent", "rustrover",
		"spotify", "virtualbox", "vlc", "vscode",
	}
	cliPrograms = []string{
		"bat", "btop", "duf", "dust", "fastfetch", "lazydocker", "lazygit",
		"openvpn", "tailscale", "tealdeer", "traceroute", "tree", "uv", "yazi",
	}
	uselessPrograms = []string{
		"aalib", "asciiquarium", "astroterm", "cbonsai", "cmatrix", "cowsay",
		"figlet", "hollywood", "lolcat", "pfetch", "pipes.sh", "pokete",
		"presenterm", "sl",
	}
)

// Default returns the built-in catalog. Required packages start selected,
// every other category starts empty.
func Default() Catalog {
	return New(
		Section{Label: LabelRequired, Entries: entries(requiredPackages, true)},
		Section{Label: LabelGUI, Entries: entries(guiPrograms, false)},
		Section{Label: LabelCLI, Entries: entries(cliPrograms, false)},
		Section{Label: LabelUseless, Entries: entries(uselessPrograms, false)},
	)
}

func entries(names []string, selected bool) []Entry {
	out := make([]Entry, len(names))
	for i, name := range names {
		out[i] = Entry{Name: name, Selected: selected}
	}
	return out
}
