package commands

const logo = `
     _   _ ________  ___
    | | | /  ___|  \/  |
    | |_| \ ` + "`" + `--.| .  . | __ _ _ __   __ _  ___ _ __
    |  _  |` + "`" + `--. \ |\/| |/ _` + "`" + ` | '_ \ / _` + "`" + ` |/ _ \ '__|
    | | | /\__/ / |  | | (_| | | | | (_| |  __/ |
    \_| |_|____/\_|  |_/\__,_|_| |_|\__, |\___|_|
                                     __/ |
                                    |___/           `

// PrintLogo writes the ASCII logo.
func PrintLogo(output OutputLogger) {
	output.OutputLine("%s", logo)
}

// PrintVersion writes the version line.
func PrintVersion(output OutputLogger, info BuildInfo) {
	output.OutputLine("Version: %s", info.Version)
}

// PrintAuthor writes the author line.
func PrintAuthor(output OutputLogger, info BuildInfo) {
	output.OutputLine("Author: %s", info.Author)
}

// PrintBanner writes the logo followed by the version and author lines.
func PrintBanner(output OutputLogger, info BuildInfo) {
	PrintLogo(output)
	PrintVersion(output, info)
	PrintAuthor(output, info)
}
