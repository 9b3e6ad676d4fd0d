// Package palette holds the colour themes used by the tidyjson colorizer.
// Values are lipgloss-compatible colour strings: hex codes or ANSI-256
// indexes. Only the token classes the colorizer needs are included.
package palette

// Theme assigns a colour to each JSON token class. Empty values fall back
// to the Brackets colour (or no styling at all when that is empty too).
type Theme struct {
	Key         string
	String      string
	Number      string
	Bool        string
	Null        string
	Brackets    string
	Punctuation string
}

// VSCode is a VS Code-inspired dark theme.
var VSCode = Theme{
	Key:         "#61AFEF",
	String:      "#98C379",
	Number:      "#D19A66",
	Bool:        "#56B6C2",
	Null:        "#5C6370",
	Brackets:    "#ABB2BF",
	Punctuation: "#ABB2BF",
}

// JQ mirrors jq's default JQ_COLORS using the 16-colour ANSI range:
// bright blue keys, green strings, default-coloured scalars, faint null.
var JQ = Theme{
	Key:         "12",
	String:      "2",
	Number:      "7",
	Bool:        "7",
	Null:        "8",
	Brackets:    "15",
	Punctuation: "15",
}

// Nord uses the Nord polar-night palette.
var Nord = Theme{
	Key:         "#88C0D0",
	String:      "#A3BE8C",
	Number:      "#B48EAD",
	Bool:        "#EBCB8B",
	Null:        "#4C566A",
	Brackets:    "#D8DEE9",
	Punctuation: "#D8DEE9",
}
